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

// Package logx renders diagnosable errors as logr key/value pairs.
//
// Nothing in this module logs on its own; call Error at the boundary where
// an error is finally handled:
//
//	if _, err := n.OrElseGet(load); err != nil {
//	    logx.Error(log, err, "profile unavailable", "user", id)
//	}
package logx

import (
	"errors"
	"slices"

	"github.com/go-logr/logr"

	"dirpx.dev/nullable/apis"
)

// Keys emitted by KeyValues.
const (
	KeyCode       = "code"
	KeyReason     = "reason"
	KeyOp         = "op"
	KeyAt         = "at"
	KeyCause      = "cause"
	KeyStacktrace = "stacktrace"
)

// KeyValues returns err's view as alternating keys and values, in the order
// code, reason, op, at, cause, stacktrace. Empty fields are skipped. Errors
// without a view yield nil.
func KeyValues(err error) []any {
	var vp apis.ViewProvider
	if err == nil || !errors.As(err, &vp) {
		return nil
	}
	v := vp.ErrorView()
	kv := make([]any, 0, 12)
	add := func(k, val string) {
		if val != "" {
			kv = append(kv, k, val)
		}
	}
	add(KeyCode, v.Code)
	add(KeyReason, v.Reason)
	add(KeyOp, v.Op)
	add(KeyAt, v.At)
	add(KeyCause, v.Cause)
	if len(v.Stacktrace) > 0 {
		kv = append(kv, KeyStacktrace, v.Stacktrace)
	}
	return kv
}

// Error logs err through logger with its key/values appended after kv.
func Error(logger logr.Logger, err error, msg string, kv ...any) {
	logger.WithCallDepth(1).Error(err, msg, slices.Concat(kv, KeyValues(err))...)
}

// Info logs err at verbosity level without marking the entry as an error.
// Useful for expected failures such as an empty lookup.
func Info(logger logr.Logger, level int, err error, msg string, kv ...any) {
	logger.WithCallDepth(1).V(level).Info(msg, slices.Concat(kv, KeyValues(err))...)
}
