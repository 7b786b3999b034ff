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

import (
	"fmt"
	"reflect"
)

// Operation names recorded on errors and used as the middle reason segment.
const (
	opGet             = "get"
	opMustGet         = "must_get"
	opOrElseGet       = "or_else_get"
	opOrElseCall      = "or_else_call"
	opOrElseRaise     = "or_else_raise"
	opOrElseRaiseCall = "or_else_raise_call"
	opIfPresent       = "if_present"
	opFilter          = "filter"
	opMap             = "map"
	opFlatMap         = "flat_map"
)

// Nullable holds either a value of type T or nothing. It has no mutators:
// once built, its contents never change. The zero value is empty.
//
// Accessors other than IfPresent hand out a copy of the held value: the
// result of DeepCopy when T implements DeepCopier[T], otherwise an ordinary
// Go assignment (which shares whatever pointers T contains). IfPresent
// passes the stored value itself so an action can mutate the object a
// pointer-typed T refers to.
type Nullable[T any] struct {
	value   T
	present bool
}

// DeepCopier is implemented by types that can produce an independent copy
// of themselves, such as Kubernetes-style generated types.
type DeepCopier[T any] interface {
	DeepCopy() T
}

// Of returns a Nullable holding value, or an empty one when value is a nil
// pointer, map, slice, channel, func or interface.
func Of[T any](value T) Nullable[T] {
	if isAbsent(value) {
		return Nullable[T]{}
	}
	return Nullable[T]{value: value, present: true}
}

// Empty returns an empty Nullable.
func Empty[T any]() Nullable[T] {
	return Nullable[T]{}
}

// FromPtr returns an empty Nullable for nil and Of(*p) otherwise, so a
// pointer to an absent value also yields an empty Nullable.
func FromPtr[T any](p *T) Nullable[T] {
	if p == nil {
		return Nullable[T]{}
	}
	return Of(*p)
}

// FromOK builds a Nullable from the comma-ok idiom:
//
//	n := nullable.FromOK(cache[key])
//
// A nil pointer, map, slice, chan, func or interface is absent even when ok
// is true.
func FromOK[T any](value T, ok bool) Nullable[T] {
	if !ok {
		return Nullable[T]{}
	}
	return Of(value)
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// snapshot returns the copy handed to callers and callbacks.
func (n Nullable[T]) snapshot() T {
	if c, ok := any(n.value).(DeepCopier[T]); ok {
		return c.DeepCopy()
	}
	return n.value
}

// IsPresent reports whether n holds a value.
func (n Nullable[T]) IsPresent() bool { return n.present }

// IsEmpty reports whether n holds nothing.
func (n Nullable[T]) IsEmpty() bool { return !n.present }

// Get returns the held value, or an *EmptyValueError when n is empty.
func (n Nullable[T]) Get() (T, error) {
	if !n.present {
		var zero T
		return zero, newEmptyValueError(1, WithOp(opGet))
	}
	return n.snapshot(), nil
}

// MustGet is like Get but panics with the *EmptyValueError.
func (n Nullable[T]) MustGet() T {
	if !n.present {
		panic(newEmptyValueError(1, WithOp(opMustGet)))
	}
	return n.snapshot()
}

// OrElse returns the held value, or other when n is empty.
func (n Nullable[T]) OrElse(other T) T {
	if !n.present {
		return other
	}
	return n.snapshot()
}

// OrElseGet returns the held value without calling supplier. When n is
// empty it returns supplier's result. A nil supplier yields an
// *UncallableError; a supplier that fails or panics yields an
// *IncompleteCallbackError wrapping the failure.
func (n Nullable[T]) OrElseGet(supplier func() (T, error)) (T, error) {
	var zero T
	if n.present {
		return n.snapshot(), nil
	}
	if supplier == nil {
		return zero, newUncallableError(1, supplier, WithOp(opOrElseGet))
	}
	v, err := guard(supplier)
	if err != nil {
		return zero, newIncompleteCallbackError(1, supplier, err, WithOp(opOrElseGet))
	}
	return v, nil
}

// OrElseCall is OrElseGet for untyped callers: supplier may be any func
// returning T or (T, error), and is called with args. A supplier that is
// not a func yields an *UncallableError.
//
//	sum, err := nullable.Empty[int]().OrElseCall(func(x, y int) int { return x + y }, 1, 1)
func (n Nullable[T]) OrElseCall(supplier any, args ...any) (T, error) {
	var zero T
	if n.present {
		return n.snapshot(), nil
	}
	if !invocable(supplier) {
		return zero, newUncallableError(1, supplier, WithOp(opOrElseCall))
	}
	out, err := callDynamic(supplier, args)
	var v T
	if err == nil {
		v, err = resultValue[T](out)
	}
	if err != nil {
		return zero, newIncompleteCallbackError(1, supplier, err, WithOp(opOrElseCall))
	}
	return v, nil
}

// OrElseRaise returns the held value. When n is empty it returns the error
// produced by supplier as is, without wrapping. A nil supplier yields an
// *UncallableError; a supplier that panics or produces a nil error yields an
// *IncompleteCallbackError. A typed nil such as (*MyErr)(nil) counts as nil.
func (n Nullable[T]) OrElseRaise(supplier func() error) (T, error) {
	var zero T
	if n.present {
		return n.snapshot(), nil
	}
	if supplier == nil {
		return zero, newUncallableError(1, supplier, WithOp(opOrElseRaise))
	}
	raised, err := guard(func() (error, error) {
		if e := supplier(); !isAbsent(e) {
			return e, nil
		}
		return nil, ErrNilError
	})
	if err != nil {
		return zero, newIncompleteCallbackError(1, supplier, err, WithOp(opOrElseRaise))
	}
	return zero, raised
}

// OrElseRaiseCall is OrElseRaise for untyped callers: supplier must be a
// func returning a single error and is called with args.
func (n Nullable[T]) OrElseRaiseCall(supplier any, args ...any) (T, error) {
	var zero T
	if n.present {
		return n.snapshot(), nil
	}
	if !invocable(supplier) {
		return zero, newUncallableError(1, supplier, WithOp(opOrElseRaiseCall))
	}
	out, err := callDynamic(supplier, args)
	if err == nil {
		var raised error
		if raised, err = raisedValue(out); err == nil {
			return zero, raised
		}
	}
	return zero, newIncompleteCallbackError(1, supplier, err, WithOp(opOrElseRaiseCall))
}

// IfPresent calls action with the stored value when n holds one and does
// nothing otherwise. It is the one accessor that does not copy.
func (n Nullable[T]) IfPresent(action func(T) error) error {
	if !n.present {
		return nil
	}
	if action == nil {
		return newUncallableError(1, action, WithOp(opIfPresent))
	}
	_, err := guard(func() (struct{}, error) {
		return struct{}{}, action(n.value)
	})
	if err != nil {
		return newIncompleteCallbackError(1, action, err, WithOp(opIfPresent))
	}
	return nil
}

// Filter returns n itself when it holds a value accepted by predicate and an
// empty Nullable otherwise. A nil predicate is rejected even when n is empty.
func (n Nullable[T]) Filter(predicate func(T) (bool, error)) (Nullable[T], error) {
	if predicate == nil {
		return Nullable[T]{}, newUncallableError(1, predicate, WithOp(opFilter))
	}
	if !n.present {
		return Nullable[T]{}, nil
	}
	keep, err := guard(func() (bool, error) {
		return predicate(n.snapshot())
	})
	if err != nil {
		return Nullable[T]{}, newIncompleteCallbackError(1, predicate, err, WithOp(opFilter))
	}
	if keep {
		return n, nil
	}
	return Nullable[T]{}, nil
}

// String renders n as "Nullable[T](value)" or "Nullable[T].empty".
func (n Nullable[T]) String() string {
	name := reflect.TypeFor[T]().String()
	if !n.present {
		return "Nullable[" + name + "].empty"
	}
	return fmt.Sprintf("Nullable[%s](%v)", name, n.value)
}
