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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"

	"dirpx.dev/nullable/apis"
	"dirpx.dev/nullable/code"
)

// File is the YAML form of a mapper configuration:
//
//	fallback:
//	  http: 500
//	  grpc: INTERNAL
//	defaults:
//	  missing: {http: 404, grpc: NOT_FOUND}
//	overrides:
//	  canceled: {http: 499}
//	rules:
//	  - code: aborted
//	    prefix: nullable.map
//	    http: 422
//	    grpc: INVALID_ARGUMENT
//
// gRPC codes are written as canonical names (NOT_FOUND) or numbers.
type File struct {
	Fallback  *Entry              `yaml:"fallback,omitempty"`
	Defaults  map[code.Code]Entry `yaml:"defaults,omitempty"`
	Overrides map[code.Code]Entry `yaml:"overrides,omitempty"`
	Rules     []RuleEntry         `yaml:"rules,omitempty"`
}

// Entry sets the HTTP status, the gRPC code, or both. A zero HTTP status or
// a nil GRPC leaves that transport untouched.
type Entry struct {
	HTTP int       `yaml:"http,omitempty"`
	GRPC *GRPCCode `yaml:"grpc,omitempty"`
}

// RuleEntry is a reason-prefix rule.
type RuleEntry struct {
	Code   code.Code `yaml:"code"`
	Prefix string    `yaml:"prefix"`
	Entry  `yaml:",inline"`
}

// GRPCCode decodes a gRPC code from its canonical name or its number.
type GRPCCode codes.Code

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *GRPCCode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("mapper: line %d: grpc code must be a scalar", node.Line)
	}
	raw := strings.TrimSpace(node.Value)
	if _, err := strconv.ParseUint(raw, 10, 32); err != nil {
		// Names go through the quoted-JSON form that codes.Code understands.
		raw = strconv.Quote(strings.ToUpper(raw))
	}
	var c codes.Code
	if err := c.UnmarshalJSON([]byte(raw)); err != nil {
		return fmt.Errorf("mapper: line %d: %w", node.Line, err)
	}
	*g = GRPCCode(c)
	return nil
}

// Options converts f into Options, in the order fallback, defaults,
// overrides, rules.
func (f *File) Options() []Option {
	var opts []Option
	if f.Fallback != nil {
		opts = append(opts, func(b *builder) {
			if f.Fallback.HTTP != 0 {
				b.http.fallback = f.Fallback.HTTP
			}
			if f.Fallback.GRPC != nil {
				b.grpc.fallback = codes.Code(*f.Fallback.GRPC)
			}
		})
	}
	for c, e := range f.Defaults {
		if e.HTTP != 0 {
			opts = append(opts, WithHTTPDefault(c, e.HTTP))
		}
		if e.GRPC != nil {
			opts = append(opts, WithGRPCDefault(c, codes.Code(*e.GRPC)))
		}
	}
	for c, e := range f.Overrides {
		if e.HTTP != 0 {
			opts = append(opts, WithHTTPOverride(c, e.HTTP))
		}
		if e.GRPC != nil {
			opts = append(opts, WithGRPCOverride(c, codes.Code(*e.GRPC)))
		}
	}
	for _, r := range f.Rules {
		if r.HTTP != 0 {
			opts = append(opts, WithHTTPPrefix(r.Code, r.Prefix, r.HTTP))
		}
		if r.GRPC != nil {
			opts = append(opts, WithGRPCPrefix(r.Code, r.Prefix, codes.Code(*r.GRPC)))
		}
	}
	return opts
}

// ParseYAML decodes a mapper configuration. Unknown keys are rejected.
func ParseYAML(data []byte) ([]Option, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("mapper: decode yaml: %w", err)
	}
	for i, r := range f.Rules {
		if r.Prefix == "" {
			return nil, fmt.Errorf("mapper: rule %d: prefix is required", i)
		}
		if r.HTTP == 0 && r.GRPC == nil {
			return nil, fmt.Errorf("mapper: rule %d (%s): neither http nor grpc is set", i, r.Prefix)
		}
	}
	return f.Options(), nil
}

// LoadFile reads and decodes the YAML configuration at path.
func LoadFile(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapper: read %s: %w", path, err)
	}
	return ParseYAML(data)
}

// FromYAML builds a Mapper from data, then applies extra on top.
func FromYAML(data []byte, extra ...Option) (apis.Mapper, error) {
	opts, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return New(append(opts, extra...)...)
}
