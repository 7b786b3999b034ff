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
	"errors"

	"dirpx.dev/nullable/code"
)

// Reason kinds, used as the last reason segment.
const (
	kindEmpty      = "empty"
	kindUncallable = "uncallable"
	kindIncomplete = "incomplete"
)

// ErrNilError is the cause reported when an OrElseRaise supplier returns a
// nil error instead of the error to raise.
var ErrNilError = errors.New("nullable: supplier returned a nil error")

var (
	_ Diagnosable = (*EmptyValueError)(nil)
	_ Diagnosable = (*UncallableError)(nil)
	_ Diagnosable = (*IncompleteCallbackError)(nil)
)

// EmptyValueError reports that a value was requested from an empty Nullable.
type EmptyValueError struct {
	BaseError
}

// UncallableError reports that a callback argument cannot be invoked: a nil
// func, or a non-func value passed to one of the *Call methods.
type UncallableError struct {
	BaseError
	callback string
}

// Callback returns the textual form of the offending argument.
func (e *UncallableError) Callback() string { return e.callback }

// IncompleteCallbackError reports that a user callback failed, either by
// returning a non-nil error or by panicking. The failure is the cause.
type IncompleteCallbackError struct {
	BaseError
	callback string
}

// Callback returns the textual form of the failed callback.
func (e *IncompleteCallbackError) Callback() string { return e.callback }

// NewEmptyValueError builds an EmptyValueError whose first frame is the
// caller of NewEmptyValueError.
func NewEmptyValueError(opts ...ErrorOption) *EmptyValueError {
	return newEmptyValueError(1, opts...)
}

// NewUncallableError builds an UncallableError for callback.
func NewUncallableError(callback any, opts ...ErrorOption) *UncallableError {
	return newUncallableError(1, callback, opts...)
}

// NewIncompleteCallbackError builds an IncompleteCallbackError for callback
// with cause as the underlying failure.
func NewIncompleteCallbackError(callback any, cause error, opts ...ErrorOption) *IncompleteCallbackError {
	return newIncompleteCallbackError(1, callback, cause, opts...)
}

// The constructors below take skip like build: 0 records their caller.

func newEmptyValueError(skip int, opts ...ErrorOption) *EmptyValueError {
	msg := "Nullable's value must not be empty in this operation."
	return &EmptyValueError{BaseError: build(skip+1, msg, code.Missing, kindEmpty, opts)}
}

func newUncallableError(skip int, callback any, opts ...ErrorOption) *UncallableError {
	text := describeCallback(callback)
	msg := "Callback is not callable `" + text + "`."
	return &UncallableError{
		BaseError: build(skip+1, msg, code.Invalid, kindUncallable, opts),
		callback:  text,
	}
}

func newIncompleteCallbackError(skip int, callback any, cause error, opts ...ErrorOption) *IncompleteCallbackError {
	text := describeCallback(callback)
	msg := "Callback is incomplete `" + text + "`."
	// The explicit cause goes last so it wins over any WithCause option.
	opts = append(opts[:len(opts):len(opts)], WithCause(cause))
	return &IncompleteCallbackError{
		BaseError: build(skip+1, msg, code.Aborted, kindIncomplete, opts),
		callback:  text,
	}
}
