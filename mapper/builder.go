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

// prefixRule is a raw reason-prefix rule as registered by an Option. It is
// validated and normalized in New.
type prefixRule[V any] struct {
	prefix string
	val    V
}

// table collects the settings for one transport.
type table[V any] struct {
	defaults  map[code.Code]V
	overrides map[code.Code]V
	prefixes  map[code.Code][]prefixRule[V]
	fallback  V
}

func newTable[V any](defaults map[code.Code]V, fallback V) table[V] {
	t := table[V]{
		defaults:  make(map[code.Code]V, len(defaults)),
		overrides: make(map[code.Code]V),
		prefixes:  make(map[code.Code][]prefixRule[V]),
		fallback:  fallback,
	}
	for k, v := range defaults {
		t.defaults[k] = v
	}
	return t
}

// builder accumulates Option values before New freezes them.
type builder struct {
	http table[int]
	grpc table[codes.Code]
}

// newBuilder seeds a builder with the package defaults.
func newBuilder() *builder {
	return &builder{
		http: newTable(defaultHTTP, http.StatusInternalServerError),
		grpc: newTable(defaultGRPC, codes.Internal),
	}
}
