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

package adapter

import "dirpx.dev/nullable"

// Func0 wraps f so its result goes through nullable.Of.
func Func0[T any](f func() T) func() nullable.Nullable[T] {
	return func() nullable.Nullable[T] { return nullable.Of(f()) }
}

// Func1 wraps f so its result goes through nullable.Of.
func Func1[A, T any](f func(A) T) func(A) nullable.Nullable[T] {
	return func(a A) nullable.Nullable[T] { return nullable.Of(f(a)) }
}

// Func2 wraps f so its result goes through nullable.Of.
func Func2[A, B, T any](f func(A, B) T) func(A, B) nullable.Nullable[T] {
	return func(a A, b B) nullable.Nullable[T] { return nullable.Of(f(a, b)) }
}

// Func3 wraps f so its result goes through nullable.Of.
func Func3[A, B, C, T any](f func(A, B, C) T) func(A, B, C) nullable.Nullable[T] {
	return func(a A, b B, c C) nullable.Nullable[T] { return nullable.Of(f(a, b, c)) }
}

// Wrap0 adapts a comma-ok function.
func Wrap0[T any](f func() (T, bool)) func() nullable.Nullable[T] {
	return func() nullable.Nullable[T] { return nullable.FromOK(f()) }
}

// Wrap1 adapts a comma-ok function such as a typed map lookup:
//
//	lookup := adapter.Wrap1(func(k string) (int, bool) { v, ok := m[k]; return v, ok })
func Wrap1[A, T any](f func(A) (T, bool)) func(A) nullable.Nullable[T] {
	return func(a A) nullable.Nullable[T] { return nullable.FromOK(f(a)) }
}

// Wrap2 adapts a comma-ok function.
func Wrap2[A, B, T any](f func(A, B) (T, bool)) func(A, B) nullable.Nullable[T] {
	return func(a A, b B) nullable.Nullable[T] { return nullable.FromOK(f(a, b)) }
}

// Wrap3 adapts a comma-ok function.
func Wrap3[A, B, C, T any](f func(A, B, C) (T, bool)) func(A, B, C) nullable.Nullable[T] {
	return func(a A, b B, c C) nullable.Nullable[T] { return nullable.FromOK(f(a, b, c)) }
}

// WrapPtr0 adapts a function returning a possibly nil pointer.
func WrapPtr0[T any](f func() *T) func() nullable.Nullable[T] {
	return func() nullable.Nullable[T] { return nullable.FromPtr(f()) }
}

// WrapPtr1 adapts a function returning a possibly nil pointer.
func WrapPtr1[A, T any](f func(A) *T) func(A) nullable.Nullable[T] {
	return func(a A) nullable.Nullable[T] { return nullable.FromPtr(f(a)) }
}

// WrapPtr2 adapts a function returning a possibly nil pointer.
func WrapPtr2[A, B, T any](f func(A, B) *T) func(A, B) nullable.Nullable[T] {
	return func(a A, b B) nullable.Nullable[T] { return nullable.FromPtr(f(a, b)) }
}

// WrapPtr3 adapts a function returning a possibly nil pointer.
func WrapPtr3[A, B, C, T any](f func(A, B, C) *T) func(A, B, C) nullable.Nullable[T] {
	return func(a A, b B, c C) nullable.Nullable[T] { return nullable.FromPtr(f(a, b, c)) }
}

// WrapErr1 adapts a lookup that reports "not found" as a nil pointer and
// failures as an error. The error is returned as is, next to an empty value.
func WrapErr1[A, T any](f func(A) (*T, error)) func(A) (nullable.Nullable[T], error) {
	return func(a A) (nullable.Nullable[T], error) {
		p, err := f(a)
		if err != nil {
			return nullable.Empty[T](), err
		}
		return nullable.FromPtr(p), nil
	}
}
