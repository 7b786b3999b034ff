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
	"dirpx.dev/nullable/code"
	"dirpx.dev/nullable/reason"
)

// ErrorOption configures an error built with NewError or one of the
// kind-specific constructors.
type ErrorOption func(*errorSettings)

type errorSettings struct {
	cause  error
	code   code.Code
	reason reason.Reason
	op     string
	skip   int
}

// WithCause attaches the error that led to this one. A nil err is ignored.
func WithCause(err error) ErrorOption {
	return func(s *errorSettings) {
		if err != nil {
			s.cause = err
		}
	}
}

// WithCode overrides the error's code. Invalid codes are ignored so that
// construction never fails.
func WithCode(c code.Code) ErrorOption {
	return func(s *errorSettings) {
		if code.Validate(c) == nil {
			s.code = c
		}
	}
}

// WithReason overrides the error's reason. Invalid reasons are ignored.
func WithReason(r reason.Reason) ErrorOption {
	return func(s *errorSettings) {
		if reason.Validate(r) == nil {
			s.reason = r
		}
	}
}

// WithOp records the name of the operation that failed, e.g. "lookup".
func WithOp(op string) ErrorOption {
	return func(s *errorSettings) { s.op = op }
}

// WithSkip drops n additional frames from the top of the captured stack.
// Helpers that build errors on behalf of their caller pass 1.
func WithSkip(n int) ErrorOption {
	return func(s *errorSettings) {
		if n > 0 {
			s.skip += n
		}
	}
}

func applyOptions(s *errorSettings, opts []ErrorOption) {
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
}
