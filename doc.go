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

// Package nullable provides Nullable[T], an immutable container for a value
// that may be absent, and a small taxonomy of diagnosable errors.
//
// # Container
//
// A Nullable is built with Of, Empty, FromPtr or FromOK and never changes
// afterwards. Operations that take a callback return an error next to their
// result:
//
//	n := nullable.Of("1234")
//	num, err := nullable.Map(n, strconv.Atoi) // Nullable[int](1234)
//	big, err = num.Filter(nullable.Predicate(func(v int) bool { return v > 1000 }))
//	v := big.OrElse(0)
//
// Callbacks signal failure by returning an error or by panicking; both are
// reported as *IncompleteCallbackError with the failure as its cause. A nil
// callback is reported as *UncallableError. OrElseCall and OrElseRaiseCall
// accept an untyped func plus arguments for callers that only have an any.
//
// Accessors hand out copies (DeepCopy when the type provides one). IfPresent
// is the exception: it passes the stored value so an action can mutate what
// a pointer-typed value refers to.
//
// # Errors
//
// Every error in the package embeds BaseError and implements Diagnosable.
// The stack is captured once when the error is built; the first frame is
// the caller's call site, not the package internals:
//
//	_, err := nullable.Empty[string]().Get()
//	var ev *nullable.EmptyValueError
//	if errors.As(err, &ev) {
//	    at, _ := ev.At()   // file, function and line of the Get call
//	}
//
// Error() returns an indented JSON object:
//
//	{
//	  "message": "Nullable's value must not be empty in this operation.",
//	  "at": "/src/app/main.go#main.main 12 line"
//	}
//
// with a "cause" key when the error wraps another. Each error also carries a
// code (package code) and a reason such as "nullable.get.empty" (package
// reason), which the grpcx, httpx and logx packages project onto transports
// and logs.
package nullable
