/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package nullable

// Map applies mapper to the value held by n and wraps the result with Of, so
// a nil pointer, map or slice result becomes an empty Nullable. An empty n
// yields an empty Nullable[U] without calling mapper. A nil mapper is
// rejected even when n is empty.
//
//	n, err := nullable.Map(nullable.Of("1234"), strconv.Atoi)
func Map[T, U any](n Nullable[T], mapper func(T) (U, error)) (Nullable[U], error) {
	if mapper == nil {
		return Nullable[U]{}, newUncallableError(1, mapper, WithOp(opMap))
	}
	if !n.present {
		return Nullable[U]{}, nil
	}
	u, err := guard(func() (U, error) {
		return mapper(n.snapshot())
	})
	if err != nil {
		return Nullable[U]{}, newIncompleteCallbackError(1, mapper, err, WithOp(opMap))
	}
	return Of(u), nil
}

// FlatMap is like Map but mapper builds the resulting Nullable itself; it is
// returned unchanged.
func FlatMap[T, U any](n Nullable[T], mapper func(T) (Nullable[U], error)) (Nullable[U], error) {
	if mapper == nil {
		return Nullable[U]{}, newUncallableError(1, mapper, WithOp(opFlatMap))
	}
	if !n.present {
		return Nullable[U]{}, nil
	}
	out, err := guard(func() (Nullable[U], error) {
		return mapper(n.snapshot())
	})
	if err != nil {
		return Nullable[U]{}, newIncompleteCallbackError(1, mapper, err, WithOp(opFlatMap))
	}
	return out, nil
}

// Lift adapts an infallible function for Map. Lift(nil) returns nil so the
// mapper is still reported as uncallable.
//
//	upper, _ := nullable.Map(name, nullable.Lift(strings.ToUpper))
func Lift[T, U any](f func(T) U) func(T) (U, error) {
	if f == nil {
		return nil
	}
	return func(v T) (U, error) { return f(v), nil }
}

// Predicate adapts an infallible predicate for Filter. Predicate(nil)
// returns nil.
func Predicate[T any](f func(T) bool) func(T) (bool, error) {
	if f == nil {
		return nil
	}
	return func(v T) (bool, error) { return f(v), nil }
}

// Action adapts an infallible action for IfPresent. Action(nil) returns nil.
func Action[T any](f func(T)) func(T) error {
	if f == nil {
		return nil
	}
	return func(v T) error {
		f(v)
		return nil
	}
}
