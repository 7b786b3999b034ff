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

// Package httpx writes diagnosable errors as JSON HTTP responses.
package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/nullable/apis"
	"dirpx.dev/nullable/code"
	"dirpx.dev/nullable/reason"
)

// ContentType is the media type of every error body.
const ContentType = "application/json"

// internalMessage replaces the text of errors that carry no view, so their
// details do not leak to clients.
const internalMessage = "internal error"

// Meta carries extra context the HTTP layer adds on top of the error. All
// fields are optional.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
}

// Writer turns errors into HTTP responses using Mapper for the status.
type Writer struct {
	Mapper apis.Mapper

	// HideStack drops "at" and "stacktrace" from the body.
	HideStack bool
}

// Write writes err with an empty Meta.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	w.WriteMeta(rw, err, Meta{})
}

// WriteMeta writes err as a JSON object with the keys code, reason, op,
// message, at, cause and stacktrace (empty ones are omitted), plus any
// fields set in meta. Errors that do not implement apis.ViewProvider are
// written as code "internal" with a generic message. A nil err writes
// nothing.
func (w Writer) WriteMeta(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}

	view := viewOf(err)
	status := w.Mapper.HTTPStatus(code.Code(view.Code), reason.Reason(view.Reason))

	body := map[string]any{"code": view.Code}
	put := func(key, value string) {
		if value != "" {
			body[key] = value
		}
	}
	put("reason", view.Reason)
	put("op", view.Op)
	put("message", view.Message)
	put("cause", view.Cause)
	put("correlation", meta.Correlation)
	put("trace_id", meta.TraceID)
	put("span_id", meta.SpanID)
	if !w.HideStack {
		put("at", view.At)
		if len(view.Stacktrace) > 0 {
			frames := make([]any, len(view.Stacktrace))
			for i, f := range view.Stacktrace {
				frames[i] = f
			}
			body["stacktrace"] = frames
		}
	}
	if meta.RetryAfterSeconds > 0 {
		body["retry_after_seconds"] = float64(meta.RetryAfterSeconds)
	}

	rw.Header().Set("Content-Type", ContentType)
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(status)

	s, serr := structpb.NewStruct(body)
	if serr != nil {
		// Only strings and lists of strings go in; keep the status at least.
		return
	}
	b, _ := protojson.Marshal(s)
	_, _ = rw.Write(b)
}

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handler adapts fn so its error is written with w.
func (w Writer) Handler(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := fn(rw, r); err != nil {
			w.Write(rw, err)
		}
	})
}

// Decode parses a body written by Writer back into a view. Unknown keys are
// ignored.
func Decode(body []byte) (apis.ErrorView, error) {
	var s structpb.Struct
	if err := protojson.Unmarshal(body, &s); err != nil {
		return apis.ErrorView{}, fmt.Errorf("httpx: decode error body: %w", err)
	}
	f := s.GetFields()
	v := apis.ErrorView{
		Code:    f["code"].GetStringValue(),
		Reason:  f["reason"].GetStringValue(),
		Op:      f["op"].GetStringValue(),
		Message: f["message"].GetStringValue(),
		At:      f["at"].GetStringValue(),
		Cause:   f["cause"].GetStringValue(),
	}
	for _, e := range f["stacktrace"].GetListValue().GetValues() {
		v.Stacktrace = append(v.Stacktrace, e.GetStringValue())
	}
	if v.Code == "" {
		return v, errors.New("httpx: error body has no code")
	}
	return v, nil
}

func viewOf(err error) apis.ErrorView {
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		return vp.ErrorView()
	}
	return apis.ErrorView{Code: string(code.Internal), Message: internalMessage}
}
