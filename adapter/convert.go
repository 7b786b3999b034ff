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

package adapter

import (
	"errors"

	"dirpx.dev/nullable/apis"
	"dirpx.dev/nullable/code"
	"dirpx.dev/nullable/reason"
)

// ToDescriptor flattens err and the statuses m resolves for it into an
// ErrorDescriptor, for structured logs and message bus propagation.
// Errors that provide no view are described as code "internal" with their
// Error() text as the message. A nil err yields the zero descriptor and a
// nil m leaves HTTPStatus and GRPCCode at zero.
func ToDescriptor(err error, m apis.Mapper) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	v := ToView(err)
	d := apis.ErrorDescriptor{
		Code:    v.Code,
		Reason:  v.Reason,
		Message: v.Message,
		At:      v.At,
	}
	if m != nil {
		st := m.Status(code.Code(v.Code), reason.Reason(v.Reason))
		d.HTTPStatus = st.HTTP
		d.GRPCCode = int(st.GRPC)
	}
	return d
}

// ToView returns the public view of err. No redaction is performed: the
// view exposes exactly what the error carries, including its details when
// it implements apis.DetailedError.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	var vp apis.ViewProvider
	if !errors.As(err, &vp) {
		return apis.ErrorView{Code: string(code.Internal), Message: err.Error()}
	}
	v := vp.ErrorView()
	if de, ok := vp.(apis.DetailedError); ok {
		if ds := de.ErrorDetails(); len(ds) > 0 {
			v.Details = ds
		}
	}
	return v
}
