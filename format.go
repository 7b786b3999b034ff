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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// display is the structured text behind Error(). Field order is the
// rendering order.
type display struct {
	Message string  `json:"message"`
	At      string  `json:"at,omitempty"`
	Cause   *string `json:"cause,omitempty"`
}

// renderDisplay encodes the display object as two-space indented JSON.
// HTML escaping is off so callback text such as "<nil>" stays readable.
func renderDisplay(message string, stack []Frame, cause error) string {
	d := display{Message: message}
	if len(stack) > 0 {
		d.At = stack[0].String()
	}
	if cause != nil {
		c := cause.Error()
		d.Cause = &c
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		// Only strings are encoded; fall back to the bare message.
		return message
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Format implements fmt.Formatter.
//
//	%s, %v  display text (same as Error())
//	%q      quoted display text
//	%+v     display text followed by the recorded stack and, when the
//	        cause supports it, the cause's own verbose form
func (e *BaseError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func (e *BaseError) formatVerbose(w io.Writer) {
	_, _ = io.WriteString(w, e.Error())
	if e.code != "" {
		_, _ = fmt.Fprintf(w, "\ncode: %s", e.code)
	}
	if e.reason != "" {
		_, _ = fmt.Fprintf(w, "\nreason: %s", e.reason)
	}
	if len(e.stack) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, f := range e.stack {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", f.FunctionName, f.FileName, f.LineNumber)
		}
	}
	if e.cause != nil {
		if _, ok := e.cause.(fmt.Formatter); ok {
			_, _ = fmt.Fprintf(w, "\ncaused by: %+v", e.cause)
		}
	}
}
