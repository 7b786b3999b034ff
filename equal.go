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

import "reflect"

// Container is the type-erased view of a Nullable, used to compare
// containers with different type parameters.
type Container interface {
	IsPresent() bool
	IsEmpty() bool

	// Unbox returns a copy of the held value and whether there is one.
	Unbox() (any, bool)
}

var _ Container = Nullable[int]{}

// Unbox implements Container.
func (n Nullable[T]) Unbox() (any, bool) {
	if !n.present {
		return nil, false
	}
	return n.snapshot(), true
}

// Equals reports whether n and other are both empty, or both hold values of
// the same dynamic type that compare equal. Values are compared with an
// Equal(T) bool method when T has one, with == when the type is comparable,
// and with reflect.DeepEqual otherwise. A nil other is never equal.
//
//	nullable.Of("1").Equals(nullable.Of(1)) // false
func (n Nullable[T]) Equals(other Container) bool {
	if other == nil {
		return false
	}
	ov, ok := other.Unbox()
	if !n.present || !ok {
		return !n.present && !ok
	}

	a := any(n.value)
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(ov) {
		return false
	}
	if eq, ok := a.(interface{ Equal(T) bool }); ok {
		if t, ok := ov.(T); ok {
			return eq.Equal(t)
		}
	}
	if ta.Comparable() {
		return comparableEqual(a, ov)
	}
	return reflect.DeepEqual(a, ov)
}

// comparableEqual compares with ==. Struct and array types can report
// Comparable yet hold non-comparable interface values; those fall back to
// reflect.DeepEqual.
func comparableEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return a == b
}
