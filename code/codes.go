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

package code

// Codes raised by the nullable package itself.
const (
	// Missing marks access to a value that is not there, e.g. Get on an
	// empty Nullable. Maps to 400 / InvalidArgument by default.
	Missing Code = "missing"

	// Invalid marks a caller-supplied argument that cannot be used, e.g. a
	// nil callback. Maps to 400 / InvalidArgument.
	Invalid Code = "invalid"

	// Aborted marks a user callback that failed part way through: it
	// returned an error or panicked. Maps to 500 / Aborted.
	Aborted Code = "aborted"

	// Internal is the fallback for errors built without a more specific code.
	Internal Code = "internal"
)

// General-purpose codes, available for errors built with NewError and for
// mapper rules written by callers.
const (
	// NotFound means a looked-up entity does not exist. Useful together with
	// adapter.WrapErr1 when an empty result must become a transport error.
	NotFound Code = "not_found"

	// Unsupported marks an operation the value does not allow.
	Unsupported Code = "unsupported"

	// PreconditionFailed means the container was in the wrong state for the
	// requested operation.
	PreconditionFailed Code = "precondition_failed"

	// Unavailable means a dependency behind a supplier is down.
	Unavailable Code = "unavailable"

	// Timeout means a supplier exceeded its time budget.
	Timeout Code = "timeout"

	// Canceled means the caller gave up.
	Canceled Code = "canceled"
)

var ordered = []Code{
	Missing,
	Invalid,
	Aborted,
	Internal,
	NotFound,
	Unsupported,
	PreconditionFailed,
	Unavailable,
	Timeout,
	Canceled,
}

var known = func() map[Code]struct{} {
	m := make(map[Code]struct{}, len(ordered))
	for _, c := range ordered {
		m[c] = struct{}{}
	}
	return m
}()
