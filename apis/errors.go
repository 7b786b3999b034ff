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

package apis

// CodedError is an error classified by a canonical code (see package code).
// Adapters treat an empty or unknown code as "internal".
type CodedError interface {
	error

	// ErrorCode returns the canonical code, e.g. "missing".
	ErrorCode() string
}

// ReasonedError refines the code with a dotted reason such as
// "nullable.map.incomplete". The reason may be empty.
type ReasonedError interface {
	error

	// ErrorReason returns the reason or "".
	ErrorReason() string
}

// DetailedError exposes structured details. Callers must not modify the
// returned slice's backing data; implementations hand out a copy.
type DetailedError interface {
	error

	// ErrorDetails returns the details or nil.
	ErrorDetails() []Detail
}

// CausedError exposes the direct cause of an error, if any.
type CausedError interface {
	error

	// Cause returns the wrapped error or nil.
	Cause() error
}

// StackTracer is implemented by errors that recorded the call stack at
// construction time.
type StackTracer interface {
	error

	// StackEntries returns one line per frame, most recent call first,
	// formatted as "<file>#<function> <line> line".
	StackEntries() []string
}

// Located is implemented by errors that know the call site that triggered
// them.
type Located interface {
	error

	// ErrorAt returns the formatted first frame, or "" when unknown.
	ErrorAt() string
}
