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

package httpx_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/nullable"
	"dirpx.dev/nullable/httpx"
	"dirpx.dev/nullable/mapper"
)

func TestWriter_Diagnosable(t *testing.T) {
	w := httpx.Writer{Mapper: mapper.MustNew()}
	_, err := nullable.Empty[int]().Get()

	rec := httptest.NewRecorder()
	w.Write(rec, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, httpx.ContentType, rec.Header().Get("Content-Type"))

	v, derr := httpx.Decode(rec.Body.Bytes())
	require.NoError(t, derr)
	assert.Equal(t, "missing", v.Code)
	assert.Equal(t, "nullable.get.empty", v.Reason)
	assert.Equal(t, "get", v.Op)
	assert.Equal(t, "Nullable's value must not be empty in this operation.", v.Message)
	assert.Contains(t, v.At, "httpx_test.go#")
	assert.NotEmpty(t, v.Stacktrace)
	assert.Equal(t, v.At, v.Stacktrace[0])
	assert.Empty(t, v.Cause)
}

func TestWriter_CauseAndMeta(t *testing.T) {
	w := httpx.Writer{Mapper: mapper.MustNew(), HideStack: true}
	sentinel := errors.New("db down")
	_, err := nullable.Empty[int]().OrElseGet(func() (int, error) { return 0, sentinel })

	rec := httptest.NewRecorder()
	w.WriteMeta(rec, fmt.Errorf("lookup: %w", err), httpx.Meta{Correlation: "c-1", RetryAfterSeconds: 3})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "3", rec.Header().Get("Retry-After"))

	v, derr := httpx.Decode(rec.Body.Bytes())
	require.NoError(t, derr)
	assert.Equal(t, "aborted", v.Code)
	assert.Equal(t, "db down", v.Cause)
	assert.Empty(t, v.At, "HideStack must drop the call site")
	assert.Empty(t, v.Stacktrace)
	assert.Contains(t, rec.Body.String(), "c-1")
}

func TestWriter_ForeignError(t *testing.T) {
	w := httpx.Writer{Mapper: mapper.MustNew()}
	rec := httptest.NewRecorder()
	w.Write(rec, errors.New("secret connection string"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")

	v, err := httpx.Decode(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "internal", v.Code)
}

func TestWriter_NilError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.Writer{Mapper: mapper.MustNew()}.Write(rec, nil)
	assert.Equal(t, 0, rec.Body.Len())
}

func TestHandler(t *testing.T) {
	w := httpx.Writer{Mapper: mapper.MustNew()}
	users := map[string]string{"1": "ada"}

	h := w.Handler(func(rw http.ResponseWriter, r *http.Request) error {
		name, ok := users[r.URL.Query().Get("id")]
		name, err := nullable.FromOK(name, ok).Get()
		if err != nil {
			return err
		}
		_, _ = rw.Write([]byte(name))
		return nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?id=1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ada", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?id=2", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := httpx.Decode([]byte("not json"))
	assert.Error(t, err)

	_, err = httpx.Decode([]byte(`{"message":"x"}`))
	assert.Error(t, err)
}
