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

// Package grpcx projects diagnosable errors onto gRPC statuses.
package grpcx

import (
	"context"
	"errors"
	"strconv"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/nullable"
	"dirpx.dev/nullable/apis"
)

// DefaultDomain is the ErrorInfo domain used unless WithDomain is given.
const DefaultDomain = "nullable.dirpx.dev"

// ErrorInfo metadata keys.
const (
	MetaCode          = "code"
	MetaOp            = "op"
	MetaAt            = "at"
	MetaCause         = "cause"
	MetaHTTPStatus    = "http_status"
	MetaCorrelationID = "correlation_id"
	MetaTraceID       = "trace_id"
	MetaSpanID        = "span_id"
)

// Extras holds optional metadata attached next to the error details. All
// fields are optional.
type Extras struct {
	// CorrelationID is a request ID or idempotency key.
	CorrelationID string

	// TraceID is the distributed trace identifier.
	TraceID string

	// SpanID is the span identifier within the trace.
	SpanID string

	// RetryDelay, when positive, is sent to clients as errdetails.RetryInfo.
	RetryDelay time.Duration

	// Links are sent as errdetails.Help.
	Links []*errdetails.Help_Link
}

// MetaFn extracts Extras from the request context and the error.
type MetaFn func(ctx context.Context, err nullable.Diagnosable) Extras

type config struct {
	domain string
	meta   MetaFn
	debug  bool
}

// Option configures ToStatus and the interceptors.
type Option func(*config)

// WithDomain sets ErrorInfo.Domain.
func WithDomain(domain string) Option {
	return func(c *config) {
		if domain != "" {
			c.domain = domain
		}
	}
}

// WithMeta installs a MetaFn. A nil fn is ignored.
func WithMeta(fn MetaFn) Option {
	return func(c *config) {
		if fn != nil {
			c.meta = fn
		}
	}
}

// WithDebugInfo controls whether the captured stack is attached as
// errdetails.DebugInfo. It is on by default; turn it off for public APIs.
func WithDebugInfo(enabled bool) Option {
	return func(c *config) { c.debug = enabled }
}

func newConfig(opts []Option) config {
	c := config{
		domain: DefaultDomain,
		meta:   func(context.Context, nullable.Diagnosable) Extras { return Extras{} },
		debug:  true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// ToStatus converts err into a gRPC status. A diagnosable error anywhere in
// the chain is mapped through m and described with errdetails.ErrorInfo and
// errdetails.DebugInfo; any other error goes through status.Convert. A nil
// err yields a nil status, which gRPC treats as OK.
func ToStatus(m apis.Mapper, err error, opts ...Option) *gstatus.Status {
	return toStatus(context.Background(), m, err, newConfig(opts))
}

func toStatus(ctx context.Context, m apis.Mapper, err error, cfg config) *gstatus.Status {
	if err == nil {
		return nil
	}
	var d nullable.Diagnosable
	if !errors.As(err, &d) {
		return gstatus.Convert(err)
	}

	st := m.Status(d.Code(), d.Reason())
	ex := cfg.meta(ctx, d)
	base := gstatus.New(st.GRPC, d.Message())

	md := map[string]string{
		MetaCode:       string(d.Code()),
		MetaHTTPStatus: strconv.Itoa(st.HTTP),
	}
	putNonEmpty(md, MetaOp, d.Op())
	if at, ok := d.At(); ok {
		md[MetaAt] = at.String()
	}
	if cause := d.Cause(); cause != nil {
		md[MetaCause] = cause.Error()
	}
	putNonEmpty(md, MetaCorrelationID, ex.CorrelationID)
	putNonEmpty(md, MetaTraceID, ex.TraceID)
	putNonEmpty(md, MetaSpanID, ex.SpanID)

	r := string(d.Reason())
	if r == "" {
		r = string(d.Code())
	}
	details := []protoadapt.MessageV1{&errdetails.ErrorInfo{
		Reason:   r,
		Domain:   cfg.domain,
		Metadata: md,
	}}
	if cfg.debug {
		frames := d.Stacktrace()
		entries := make([]string, len(frames))
		for i, f := range frames {
			entries[i] = f.String()
		}
		details = append(details, &errdetails.DebugInfo{
			StackEntries: entries,
			Detail:       d.Error(),
		})
	}
	if ex.RetryDelay > 0 {
		details = append(details, &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryDelay)})
	}
	if len(ex.Links) > 0 {
		details = append(details, &errdetails.Help{Links: ex.Links})
	}

	with, werr := base.WithDetails(details...)
	if werr != nil {
		return base
	}
	return with
}

func putNonEmpty(md map[string]string, key, value string) {
	if value != "" {
		md[key] = value
	}
}

// UnaryServerInterceptor converts diagnosable handler errors into rich gRPC
// statuses. Other errors are returned unchanged.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	cfg := newConfig(opts)
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, convert(ctx, m, err, cfg)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, opts ...Option) grpc.StreamServerInterceptor {
	cfg := newConfig(opts)
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return convert(ss.Context(), m, err, cfg)
	}
}

func convert(ctx context.Context, m apis.Mapper, err error, cfg config) error {
	var d nullable.Diagnosable
	if !errors.As(err, &d) {
		// Not ours.
		return err
	}
	return toStatus(ctx, m, err, cfg).Err()
}

// ExtractErrorInfo pulls errdetails.ErrorInfo out of a gRPC error.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	return extract[*errdetails.ErrorInfo](err)
}

// ExtractDebugInfo pulls errdetails.DebugInfo out of a gRPC error.
func ExtractDebugInfo(err error) (*errdetails.DebugInfo, bool) {
	return extract[*errdetails.DebugInfo](err)
}

// ExtractRetryInfo pulls errdetails.RetryInfo out of a gRPC error.
func ExtractRetryInfo(err error) (*errdetails.RetryInfo, bool) {
	return extract[*errdetails.RetryInfo](err)
}

func extract[D any](err error) (D, bool) {
	var zero D
	if err == nil {
		return zero, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return zero, false
	}
	for _, d := range st.Details() {
		if v, ok := d.(D); ok {
			return v, true
		}
	}
	return zero, false
}
