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

// ErrorDescriptor is a flat description of an error together with the
// transport statuses it resolved to. It is meant for structured logs and
// message buses.
type ErrorDescriptor struct {
	// Code is the canonical code.
	Code string `json:"code"`

	// Reason is the dotted refinement, possibly empty.
	Reason string `json:"reason,omitempty"`

	// HTTPStatus is the resolved HTTP status.
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the human-readable description (not the full display text).
	Message string `json:"message,omitempty"`

	// At is the formatted call site that triggered the error.
	At string `json:"at,omitempty"`
}
