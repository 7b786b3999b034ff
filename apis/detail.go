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

package apis

// Detail is one structured piece of information attached to an error.
//
// Nullable errors emit one Detail per captured stack frame with Type
// "frame", Field set to the function name and Info carrying "file" and
// "line".
type Detail struct {
	// Type classifies the detail, e.g. "frame".
	Type string `json:"type,omitempty"`

	// Field is the subject of the detail, e.g. a function or field name.
	Field string `json:"field,omitempty"`

	// Reason is a short explanation.
	Reason string `json:"reason,omitempty"`

	// Info carries extra string data.
	Info map[string]string `json:"info,omitempty"`
}
