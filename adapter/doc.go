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

// Package adapter turns ordinary Go functions that may produce no value into
// functions returning nullable.Nullable, and flattens diagnosable errors
// into descriptors and views for logs and message buses.
//
// Go has no variadic generics, so each shape comes in arities 0 to 3:
//
//	Func1(f)    func(A) T          -> func(A) Nullable[T]  (nil results are empty)
//	Wrap1(f)    func(A) (T, bool)  -> func(A) Nullable[T]  (comma-ok)
//	WrapPtr1(f) func(A) *T         -> func(A) Nullable[T]  (nil pointer is empty)
//
// WrapErr1 covers the repository shape func(A) (*T, error). Errors returned by
// the wrapped function are passed through unchanged.
package adapter
