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

package logx_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/nullable"
	"dirpx.dev/nullable/logx"
)

func TestKeyValues(t *testing.T) {
	_, err := nullable.Empty[int]().OrElseGet(func() (int, error) { return 0, errors.New("cold") })

	kv := logx.KeyValues(err)
	require.NotEmpty(t, kv)
	require.Zero(t, len(kv)%2)

	got := map[string]any{}
	for i := 0; i < len(kv); i += 2 {
		got[kv[i].(string)] = kv[i+1]
	}
	assert.Equal(t, "aborted", got[logx.KeyCode])
	assert.Equal(t, "nullable.or_else_get.incomplete", got[logx.KeyReason])
	assert.Equal(t, "or_else_get", got[logx.KeyOp])
	assert.Equal(t, "cold", got[logx.KeyCause])
	assert.Contains(t, got[logx.KeyAt], "logx_test.go#")
	assert.NotEmpty(t, got[logx.KeyStacktrace])

	assert.Nil(t, logx.KeyValues(errors.New("plain")))
	assert.Nil(t, logx.KeyValues(nil))
}

func TestError(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	_, err := nullable.Empty[string]().Get()
	logx.Error(logger, err, "lookup failed", "user", "42")

	require.Len(t, lines, 1)
	line := lines[0]
	for _, want := range []string{
		`"msg"="lookup failed"`,
		`"user"="42"`,
		`"code"="missing"`,
		`"reason"="nullable.get.empty"`,
		`"op"="get"`,
	} {
		assert.True(t, strings.Contains(line, want), "missing %s in %s", want, line)
	}
}

func TestError_KeepsCallerSlice(t *testing.T) {
	var lines []string
	logger := funcr.New(func(_, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	backing := make([]any, 2, 16)
	backing[0], backing[1] = "user", "42"
	spare := backing[:cap(backing)]

	_, err := nullable.Empty[string]().Get()
	logx.Error(logger, err, "lookup failed", backing...)
	logx.Info(logger, 0, err, "cache miss", backing...)

	require.Len(t, lines, 2)
	assert.Equal(t, []any{"user", "42"}, backing)
	for i := len(backing); i < len(spare); i++ {
		assert.Nil(t, spare[i], "spare capacity written at %d", i)
	}
}

func TestInfo_Verbosity(t *testing.T) {
	var lines []string
	logger := funcr.New(func(_, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	_, err := nullable.Empty[string]().Get()
	logx.Info(logger, 1, err, "cache miss")
	logx.Info(logger, 2, err, "suppressed")

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"code"="missing"`)
}
