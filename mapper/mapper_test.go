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
	"errors"
	"strings"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/nullable/apis"
	"dirpx.dev/nullable/code"
	"dirpx.dev/nullable/reason"
)

func TestDefaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	tests := []struct {
		c        code.Code
		wantHTTP int
		wantGRPC codes.Code
	}{
		{code.Missing, 400, codes.InvalidArgument},
		{code.Invalid, 400, codes.InvalidArgument},
		{code.Aborted, 500, codes.Aborted},
		{code.Internal, 500, codes.Internal},
		{code.NotFound, 404, codes.NotFound},
		{code.Unsupported, 501, codes.Unimplemented},
		{code.PreconditionFailed, 412, codes.FailedPrecondition},
		{code.Unavailable, 503, codes.Unavailable},
		{code.Timeout, 504, codes.DeadlineExceeded},
		{code.Canceled, 408, codes.Canceled},
	}
	for _, tt := range tests {
		st := m.Status(tt.c, reason.Empty)
		if st.HTTP != tt.wantHTTP || st.GRPC != tt.wantGRPC {
			t.Errorf("Status(%q) = HTTP %d GRPC %v; want HTTP %d GRPC %v",
				tt.c, st.HTTP, st.GRPC, tt.wantHTTP, tt.wantGRPC)
		}
	}
}

func TestDefaults_CoverEveryCode(t *testing.T) {
	for _, c := range code.All() {
		if _, ok := defaultHTTP[c]; !ok {
			t.Errorf("no HTTP default for %q", c)
		}
		if _, ok := defaultGRPC[c]; !ok {
			t.Errorf("no gRPC default for %q", c)
		}
	}
}

func TestPriority_OverrideOverPrefixOverDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(code.Aborted, 500),
		WithHTTPPrefix(code.Aborted, "nullable.map", 422),
		WithHTTPOverride(code.Aborted, 409),
		WithGRPCDefault(code.Aborted, codes.Aborted),
		WithGRPCPrefix(code.Aborted, "nullable.map", codes.InvalidArgument),
		WithGRPCOverride(code.Aborted, codes.Unknown),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.Aborted, mustReason("nullable.map.incomplete"))
	if st.HTTP != 409 || st.GRPC != codes.Unknown {
		t.Fatalf("override must win; got %+v", st)
	}
}

func TestPrefix_Longest_And_SegmentBoundary(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.Aborted, "nullable", 500),
		WithHTTPPrefix(code.Aborted, "nullable.map", 422),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.Aborted, mustReason("nullable.map.incomplete")); got != 422 {
		t.Fatalf("longest prefix: got %d, want 422", got)
	}
	if got := m.HTTPStatus(code.Aborted, mustReason("nullable.filter.incomplete")); got != 500 {
		t.Fatalf("shorter prefix: got %d, want 500", got)
	}
	// "nullable.ma" must not match "nullable.map".
	if got := m.HTTPStatus(code.Aborted, mustReason("nullable.ma")); got != 500 {
		t.Fatalf("segment boundary crossed: got %d", got)
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.Invalid, "nullable.*.uncallable", 422),
		WithHTTPPrefix(code.Invalid, "nullable.map.uncallable", 418),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.Invalid, mustReason("nullable.map.uncallable")); got != 418 {
		t.Fatalf("literal must beat wildcard; got %d", got)
	}
	if got := m.HTTPStatus(code.Invalid, mustReason("nullable.filter.uncallable")); got != 422 {
		t.Fatalf("wildcard match failed; got %d", got)
	}
	if got := m.HTTPStatus(code.Invalid, mustReason("nullable.uncallable")); got == 422 {
		t.Fatal("wildcard must not match zero segments")
	}
}

func TestPrefix_ReRegistrationReplaces(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.Aborted, "nullable.map", 422),
		WithHTTPPrefix(code.Aborted, "NULLABLE/MAP", 409),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.Aborted, mustReason("nullable.map.incomplete")); got != 409 {
		t.Fatalf("got %d, want 409", got)
	}
}

func TestNormalization_In_Options(t *testing.T) {
	m, err := New(WithHTTPPrefix(code.Aborted, "  NULLABLE/OR-ELSE-GET  ", 424))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.Aborted, mustReason("nullable.or_else_get.incomplete")); got != 424 {
		t.Fatalf("normalized prefix should match; got %d", got)
	}
}

func TestFallback(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.Code("custom_code"), reason.Empty)
	if st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("fallback = %+v", st)
	}

	m, err = New(WithFallback(502, codes.Unavailable))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st = m.Status(code.Code("custom_code"), reason.Empty)
	if st.HTTP != 502 || st.GRPC != codes.Unavailable {
		t.Fatalf("custom fallback = %+v", st)
	}
}

func TestNew_RejectsInvalidRules(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"empty prefix", WithHTTPPrefix(code.Aborted, "  ", 500)},
		{"wildcard only", WithHTTPPrefix(code.Aborted, "*.*", 500)},
		{"bad segment", WithHTTPPrefix(code.Aborted, "nullable.9map", 500)},
		{"too deep", WithHTTPPrefix(code.Aborted, "a.b.c.d.e", 500)},
		{"http status", WithHTTPOverride(code.Aborted, 42)},
		{"grpc code", WithGRPCDefault(code.Aborted, codes.Code(99))},
		{"bad code", WithHTTPDefault(code.Code("X"), 500)},
		{"fallback", WithFallback(0, codes.Internal)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); !errors.Is(err, ErrInvalidRule) {
				t.Fatalf("New() err = %v, want ErrInvalidRule", err)
			}
		})
	}
}

func TestExplain_Sources_And_Pattern(t *testing.T) {
	m := MustNew(WithPrefix(code.Aborted, "nullable.*.incomplete", 422, codes.InvalidArgument))
	exp := m.Explain(code.Aborted, mustReason("nullable.map.incomplete"))
	for _, want := range []string{"source=prefix", `pattern="nullable.*.incomplete"`, "http:", "grpc:"} {
		if !strings.Contains(exp, want) {
			t.Fatalf("Explain missing %q:\n%s", want, exp)
		}
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m := MustNew(
		WithHTTPPrefix(code.Aborted, "nullable.map", 422),
		WithHTTPOverride(code.Canceled, 499),
	)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(code.Aborted, mustReason("nullable.map.incomplete"))
				_ = m.Status(code.Canceled, reason.Empty)
				_ = m.Status(code.Missing, mustReason("nullable.get.empty"))
			}
		}()
	}
	wg.Wait()
}

func mustReason(s string) reason.Reason {
	r, err := reason.Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m := MustNew()
	r := mustReason("nullable.get.empty")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(code.Missing, r)
	}
}

func BenchmarkMapperStatus_PrefixHit(b *testing.B) {
	m := MustNew(
		WithPrefix(code.Aborted, "nullable.map", 422, codes.InvalidArgument),
		WithPrefix(code.Aborted, "nullable.*.incomplete", 500, codes.Aborted),
	)
	r := mustReason("nullable.map.incomplete")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(code.Aborted, r)
	}
}

func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
