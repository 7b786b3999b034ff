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

// ViewProvider is implemented by errors that can render themselves as an
// ErrorView without help from an adapter.
type ViewProvider interface {
	error

	// ErrorView returns a snapshot safe to marshal.
	ErrorView() ErrorView
}

// ErrorView is the serializable shape of a diagnosable error. It mirrors the
// structured display text ({message, at, cause}) and adds classification.
type ErrorView struct {
	// Code is the canonical code.
	Code string `json:"code"`

	// Reason is the dotted refinement, possibly empty.
	Reason string `json:"reason,omitempty"`

	// Op names the container operation that failed, e.g. "map".
	Op string `json:"op,omitempty"`

	// Message is the human-readable description.
	Message string `json:"message,omitempty"`

	// At is the formatted call site that triggered the error.
	At string `json:"at,omitempty"`

	// Cause is the string form of the wrapped error.
	Cause string `json:"cause,omitempty"`

	// Stacktrace lists the captured frames, most recent first.
	Stacktrace []string `json:"stacktrace,omitempty"`

	// Details carries structured extras.
	Details []Detail `json:"details,omitempty"`
}
