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
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/nullable/apis"
	"dirpx.dev/nullable/code"
	"dirpx.dev/nullable/reason"
)

// Resolution tiers reported by Explain.
const (
	sourceOverride = "override"
	sourcePrefix   = "prefix"
	sourceDefault  = "default"
	sourceFallback = "fallback"
)

// maxCode is the largest canonical gRPC code.
const maxCode = codes.Unauthenticated

// ErrInvalidRule is wrapped by every error New returns.
var ErrInvalidRule = errors.New("mapper: invalid rule")

var _ apis.Mapper = (*mapper)(nil)

// New builds an immutable apis.Mapper from the package defaults and opts.
//
// Build steps:
//
//  1. seed a builder with the defaults for every code in package code;
//  2. apply opts in order (later options win for the same key);
//  3. validate codes, statuses and reason prefixes;
//  4. freeze everything into fresh maps so callers cannot mutate the result.
//
// The returned Mapper is safe for concurrent use.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	httpRes, err := compile("http", b.http, validHTTP)
	if err != nil {
		return nil, err
	}
	grpcRes, err := compile("grpc", b.grpc, validGRPC)
	if err != nil {
		return nil, err
	}
	return &mapper{http: httpRes, grpc: grpcRes}, nil
}

// MustNew is like New but panics on error. Intended for package-level vars.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// mapper is the frozen snapshot produced by New.
type mapper struct {
	http resolver[int]
	grpc resolver[codes.Code]
}

// HTTPStatus resolves an HTTP status for (c, r).
//
// Resolution order:
//  1. exact per-code override;
//  2. per-code longest reason-prefix rule;
//  3. per-code default;
//  4. fallback (500 unless changed with WithFallback).
func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	v, _, _ := m.http.resolve(c, r)
	return v
}

// GRPCStatus resolves a gRPC code for (c, r) with the same precedence as
// HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	v, _, _ := m.grpc.resolve(c, r)
	return v
}

// Status resolves both transports at once.
func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c, r),
		GRPC: m.GRPCStatus(c, r),
	}
}

// Explain reports which tier resolved each transport, for example:
//
//	code="aborted" reason="nullable.map.incomplete"
//	http: source=prefix pattern="nullable.map" -> 422
//	grpc: source=default -> Aborted(10)
//
// The output is meant for people and logs, not for parsing.
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q reason=%q\n", c, r)

	hv, src, pat := m.http.resolve(c, r)
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", describe(src, pat), hv)

	gv, src, pat := m.grpc.resolve(c, r)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)", describe(src, pat), gv, uint32(gv))
	return b.String()
}

func describe(source, pattern string) string {
	if source == sourcePrefix {
		return fmt.Sprintf("source=%s pattern=%q", source, pattern)
	}
	return "source=" + source
}

// rule is a validated prefix rule.
type rule[V any] struct {
	pattern  string
	segments int
	val      V
}

// resolver is the frozen form of a table.
type resolver[V any] struct {
	defaults  map[code.Code]V
	overrides map[code.Code]V
	// rules are ordered by segment count, longest first.
	rules    map[code.Code][]rule[V]
	fallback V
}

func (res resolver[V]) resolve(c code.Code, r reason.Reason) (V, string, string) {
	if v, ok := res.overrides[c]; ok {
		return v, sourceOverride, ""
	}
	if rl, ok := bestRule(res.rules[c], r); ok {
		return rl.val, sourcePrefix, rl.pattern
	}
	if v, ok := res.defaults[c]; ok {
		return v, sourceDefault, ""
	}
	return res.fallback, sourceFallback, ""
}

// bestRule picks the longest matching pattern. Among patterns of the same
// length the one with more literal segments wins, then the earliest one.
func bestRule[V any](rules []rule[V], r reason.Reason) (rule[V], bool) {
	if r == reason.Empty {
		return rule[V]{}, false
	}
	best, bestLit := -1, -1
	for i, rl := range rules {
		if best >= 0 && rl.segments < rules[best].segments {
			break
		}
		if ok, lit := r.Match(rl.pattern); ok && lit > bestLit {
			best, bestLit = i, lit
		}
	}
	if best < 0 {
		return rule[V]{}, false
	}
	return rules[best], true
}

func compile[V any](transport string, t table[V], valid func(V) bool) (resolver[V], error) {
	res := resolver[V]{
		defaults:  make(map[code.Code]V, len(t.defaults)),
		overrides: make(map[code.Code]V, len(t.overrides)),
		rules:     make(map[code.Code][]rule[V], len(t.prefixes)),
		fallback:  t.fallback,
	}
	if !valid(t.fallback) {
		return res, fmt.Errorf("%w: %s fallback %v", ErrInvalidRule, transport, t.fallback)
	}

	copyChecked := func(kind string, src, dst map[code.Code]V) error {
		for c, v := range src {
			if err := code.Validate(c); err != nil {
				return fmt.Errorf("%w: %s %s for code %q: %w", ErrInvalidRule, transport, kind, c, err)
			}
			if !valid(v) {
				return fmt.Errorf("%w: %s %s %v for code %q", ErrInvalidRule, transport, kind, v, c)
			}
			dst[c] = v
		}
		return nil
	}
	if err := copyChecked("default", t.defaults, res.defaults); err != nil {
		return res, err
	}
	if err := copyChecked("override", t.overrides, res.overrides); err != nil {
		return res, err
	}

	for c, raw := range t.prefixes {
		if err := code.Validate(c); err != nil {
			return res, fmt.Errorf("%w: %s prefix for code %q: %w", ErrInvalidRule, transport, c, err)
		}
		rules := make([]rule[V], 0, len(raw))
		index := make(map[string]int, len(raw))
		for _, pr := range raw {
			p, n, err := normalizePrefix(pr.prefix)
			if err != nil {
				return res, fmt.Errorf("%w: %s prefix %q for code %q: %w", ErrInvalidRule, transport, pr.prefix, c, err)
			}
			if !valid(pr.val) {
				return res, fmt.Errorf("%w: %s prefix %q status %v", ErrInvalidRule, transport, p, pr.val)
			}
			// Re-registering a pattern replaces its status.
			if i, ok := index[p]; ok {
				rules[i].val = pr.val
				continue
			}
			index[p] = len(rules)
			rules = append(rules, rule[V]{pattern: p, segments: n, val: pr.val})
		}
		slices.SortStableFunc(rules, func(a, b rule[V]) int {
			return cmp.Compare(b.segments, a.segments)
		})
		res.rules[c] = rules
	}
	return res, nil
}

func validHTTP(status int) bool { return status >= 100 && status <= 599 }

func validGRPC(c codes.Code) bool { return c <= maxCode }

// normalizePrefix canonicalizes raw with reason.Normalize and checks every
// segment. It returns the pattern and its segment count.
func normalizePrefix(raw string) (string, int, error) {
	p := reason.Normalize(raw)
	if p == "" {
		return "", 0, errors.New("empty prefix")
	}
	segs := strings.Split(p, reason.Separator)
	if len(segs) > 4 {
		return "", 0, fmt.Errorf("%d segments, reasons have at most 4", len(segs))
	}
	allWild := true
	for _, seg := range segs {
		if !validPrefixSegment(seg) {
			return "", 0, fmt.Errorf("invalid segment %q", seg)
		}
		if seg != reason.Wildcard {
			allWild = false
		}
	}
	if allWild {
		return "", 0, errors.New("prefix cannot consist of '*' only")
	}
	return p, len(segs), nil
}

// validPrefixSegment accepts "*" or [a-z][a-z0-9_]*.
func validPrefixSegment(seg string) bool {
	if seg == reason.Wildcard {
		return true
	}
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
