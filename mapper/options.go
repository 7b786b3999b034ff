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

package mapper

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/nullable/code"
)

// Option configures the Mapper at build time.
type Option func(*builder)

// WithHTTPDefault sets the default HTTP status for c.
func WithHTTPDefault(c code.Code, status int) Option {
	return func(b *builder) { b.http.defaults[c] = status }
}

// WithGRPCDefault sets the default gRPC code for c.
func WithGRPCDefault(c code.Code, status codes.Code) Option {
	return func(b *builder) { b.grpc.defaults[c] = status }
}

// WithHTTPOverride registers an exact HTTP override for c. Overrides win over
// prefix rules and defaults.
func WithHTTPOverride(c code.Code, status int) Option {
	return func(b *builder) { b.http.overrides[c] = status }
}

// WithGRPCOverride registers an exact gRPC override for c.
func WithGRPCOverride(c code.Code, status codes.Code) Option {
	return func(b *builder) { b.grpc.overrides[c] = status }
}

// WithHTTPPrefix adds an HTTP reason-prefix rule for c. The longest matching
// prefix wins; "*" matches exactly one segment.
func WithHTTPPrefix(c code.Code, prefix string, status int) Option {
	return func(b *builder) {
		b.http.prefixes[c] = append(b.http.prefixes[c], prefixRule[int]{prefix, status})
	}
}

// WithGRPCPrefix adds a gRPC reason-prefix rule for c.
func WithGRPCPrefix(c code.Code, prefix string, status codes.Code) Option {
	return func(b *builder) {
		b.grpc.prefixes[c] = append(b.grpc.prefixes[c], prefixRule[codes.Code]{prefix, status})
	}
}

// WithPrefix registers the same prefix for both transports.
func WithPrefix(c code.Code, prefix string, status int, grpc codes.Code) Option {
	return func(b *builder) {
		WithHTTPPrefix(c, prefix, status)(b)
		WithGRPCPrefix(c, prefix, grpc)(b)
	}
}

// WithFallback replaces the statuses used for codes that have no default.
func WithFallback(status int, grpc codes.Code) Option {
	return func(b *builder) {
		b.http.fallback = status
		b.grpc.fallback = grpc
	}
}
