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
	"strconv"

	"dirpx.dev/nullable/apis"
	"dirpx.dev/nullable/code"
	"dirpx.dev/nullable/reason"
)

// Diagnosable is implemented by every error in this package. Use it with
// errors.As to catch any of them regardless of kind.
type Diagnosable interface {
	error

	// Message returns the human-readable description without call-site
	// or cause decoration.
	Message() string

	// Cause returns the wrapped error or nil.
	Cause() error

	// At returns the first recorded frame: the call site that triggered
	// the failure.
	At() (Frame, bool)

	// Stacktrace returns a copy of the recorded frames, most recent first.
	Stacktrace() []Frame

	// Code returns the canonical classification.
	Code() code.Code

	// Reason returns the dotted refinement, possibly empty.
	Reason() reason.Reason

	// Op returns the name of the failed operation, possibly empty.
	Op() string
}

var (
	_ Diagnosable        = (*BaseError)(nil)
	_ apis.CodedError    = (*BaseError)(nil)
	_ apis.ReasonedError = (*BaseError)(nil)
	_ apis.CausedError   = (*BaseError)(nil)
	_ apis.DetailedError = (*BaseError)(nil)
	_ apis.StackTracer   = (*BaseError)(nil)
	_ apis.Located       = (*BaseError)(nil)
	_ apis.ViewProvider  = (*BaseError)(nil)
)

// BaseError is the base diagnosable error. It records its stack once, when it is
// built, and never changes afterwards.
//
// The text returned by Error() is an indented JSON object with the keys
// "message", "at" and, when a cause is present, "cause".
type BaseError struct {
	message string
	cause   error
	code    code.Code
	reason  reason.Reason
	op      string
	stack   []Frame
	display string
}

// NewError builds a base diagnosable error. The first recorded frame is the
// caller of NewError (adjust with WithSkip).
//
//	err := nullable.NewError("user cache is cold",
//	    nullable.WithCode(code.Unavailable),
//	    nullable.WithCause(io.ErrUnexpectedEOF),
//	)
func NewError(message string, opts ...ErrorOption) *BaseError {
	e := build(1, message, code.Internal, "", opts)
	return &e
}

// build assembles a BaseError. skip follows captureStack: 0 records the caller
// of build as the first frame.
func build(skip int, message string, c code.Code, kind string, opts []ErrorOption) BaseError {
	s := errorSettings{code: c}
	applyOptions(&s, opts)

	e := BaseError{
		message: message,
		cause:   s.cause,
		code:    s.code,
		reason:  s.reason,
		op:      s.op,
		stack:   captureStack(skip + 1 + s.skip),
	}
	if e.reason == reason.Empty && kind != "" && e.op != "" {
		if r, err := reason.Join("nullable", e.op, kind); err == nil {
			e.reason = r
		}
	}
	e.display = renderDisplay(e.message, e.stack, e.cause)
	return e
}

// Error returns the structured display text.
func (e *BaseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.display
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *BaseError) Unwrap() error { return e.cause }

// Cause returns the wrapped error or nil.
func (e *BaseError) Cause() error { return e.cause }

// Message returns the plain description.
func (e *BaseError) Message() string { return e.message }

// Code returns the canonical code.
func (e *BaseError) Code() code.Code { return e.code }

// Reason returns the dotted refinement.
func (e *BaseError) Reason() reason.Reason { return e.reason }

// Op returns the failed operation's name.
func (e *BaseError) Op() string { return e.op }

// At returns the call site that triggered the error.
func (e *BaseError) At() (Frame, bool) {
	if len(e.stack) == 0 {
		return Frame{}, false
	}
	return e.stack[0], true
}

// Stacktrace returns a copy of the recorded frames. Frame holds only
// value fields, so the copy is independent of the error.
func (e *BaseError) Stacktrace() []Frame {
	if len(e.stack) == 0 {
		return nil
	}
	out := make([]Frame, len(e.stack))
	copy(out, e.stack)
	return out
}

// ErrorCode implements apis.CodedError.
func (e *BaseError) ErrorCode() string { return string(e.code) }

// ErrorReason implements apis.ReasonedError.
func (e *BaseError) ErrorReason() string { return string(e.reason) }

// ErrorAt implements apis.Located.
func (e *BaseError) ErrorAt() string {
	if f, ok := e.At(); ok {
		return f.String()
	}
	return ""
}

// StackEntries implements apis.StackTracer.
func (e *BaseError) StackEntries() []string {
	if len(e.stack) == 0 {
		return nil
	}
	out := make([]string, len(e.stack))
	for i, f := range e.stack {
		out[i] = f.String()
	}
	return out
}

// ErrorDetails implements apis.DetailedError with one "frame" detail per
// recorded call site.
func (e *BaseError) ErrorDetails() []apis.Detail {
	if len(e.stack) == 0 {
		return nil
	}
	out := make([]apis.Detail, len(e.stack))
	for i, f := range e.stack {
		out[i] = apis.Detail{
			Type:  "frame",
			Field: f.FunctionName,
			Info: map[string]string{
				"file": f.FileName,
				"line": strconv.Itoa(f.LineNumber),
			},
		}
	}
	return out
}

// ErrorView implements apis.ViewProvider.
func (e *BaseError) ErrorView() apis.ErrorView {
	v := apis.ErrorView{
		Code:       string(e.code),
		Reason:     string(e.reason),
		Op:         e.op,
		Message:    e.message,
		At:         e.ErrorAt(),
		Stacktrace: e.StackEntries(),
	}
	if e.cause != nil {
		v.Cause = e.cause.Error()
	}
	return v
}
