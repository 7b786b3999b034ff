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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is a validated, dot-separated identifier of 1..4 segments.
type Reason string

const (
	// MinLength is the shortest non-empty reason.
	MinLength = 3
	// MaxLength is the longest accepted reason.
	MaxLength = 128
)

// Separator joins segments.
const Separator = "."

// Wildcard matches exactly one segment in Match patterns.
const Wildcard = "*"

const reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned for malformed reasons.
	ErrReasonInvalidFormat = errors.New("nullable: invalid reason format")
	// ErrReasonInvalidLength is returned for reasons outside MinLength..MaxLength.
	ErrReasonInvalidLength = errors.New("nullable: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty means "no reason provided".
var Empty Reason = ""

// Normalize trims and lowercases s, turns "/" into "." and "-" into "_".
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", Separator)
	return strings.ReplaceAll(s, "-", "_")
}

// Parse normalizes and validates s. The empty string parses to Empty.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is like Parse but panics on invalid or empty input.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("nullable: empty reason in MustParse")
	}
	return r
}

// Join builds a reason from individual segments. Each segment is normalized;
// camelCase and spaces are not converted, so callers pass snake_case.
func Join(segments ...string) (Reason, error) {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, Normalize(s))
	}
	return Parse(strings.Join(parts, Separator))
}

// Validate reports whether r is canonical. Empty is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// Segments splits r on Separator. Empty yields nil.
func (r Reason) Segments() []string {
	if r == Empty {
		return nil
	}
	return strings.Split(string(r), Separator)
}

// Match reports whether pattern is a segment-wise prefix of r. A "*"
// segment in pattern matches any single segment. It returns the number of
// pattern segments that matched literally, which callers use to rank
// competing patterns of equal length.
//
//	Reason("nullable.map.incomplete").Match("nullable")              // true, 1
//	Reason("nullable.map.incomplete").Match("nullable.*.incomplete") // true, 2
//	Reason("nullable.map.incomplete").Match("nullable.filter")       // false, 0
func (r Reason) Match(pattern string) (bool, int) {
	if pattern == "" {
		return false, 0
	}
	segs := r.Segments()
	pats := strings.Split(pattern, Separator)
	if len(pats) > len(segs) {
		return false, 0
	}
	literal := 0
	for i, p := range pats {
		switch p {
		case Wildcard:
		case segs[i]:
			literal++
		default:
			return false, 0
		}
	}
	return true, literal
}

func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler. Empty encodes as "".
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
