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
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/nullable/code"
)

// defaultHTTP holds the built-in HTTP mapping for every code in package code.
// Callers adjust it at the boundary where HTTP is produced.
var defaultHTTP = map[code.Code]int{
	// Raised by the container itself.
	code.Missing:  http.StatusBadRequest,          // Get on an empty value: the request referenced nothing.
	code.Invalid:  http.StatusBadRequest,          // Nil or non-func callback.
	code.Aborted:  http.StatusInternalServerError, // A user callback failed half way.
	code.Internal: http.StatusInternalServerError,

	code.NotFound:           http.StatusNotFound,
	code.Unsupported:        http.StatusNotImplemented,
	code.PreconditionFailed: http.StatusPreconditionFailed,
	code.Unavailable:        http.StatusServiceUnavailable,
	code.Timeout:            http.StatusGatewayTimeout,
	// 499 (nginx "client closed request") is common too; switch with WithHTTPDefault.
	code.Canceled: http.StatusRequestTimeout,
}

// defaultGRPC holds the built-in gRPC mapping, kept in step with defaultHTTP.
var defaultGRPC = map[code.Code]codes.Code{
	code.Missing:  codes.InvalidArgument,
	code.Invalid:  codes.InvalidArgument,
	code.Aborted:  codes.Aborted,
	code.Internal: codes.Internal,

	code.NotFound:           codes.NotFound,
	code.Unsupported:        codes.Unimplemented,
	code.PreconditionFailed: codes.FailedPrecondition,
	code.Unavailable:        codes.Unavailable,
	code.Timeout:            codes.DeadlineExceeded,
	code.Canceled:           codes.Canceled,
}
