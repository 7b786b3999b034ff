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

package grpcx_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/nullable"
	"dirpx.dev/nullable/grpcx"
	"dirpx.dev/nullable/mapper"
)

func TestToStatus_EmptyValue(t *testing.T) {
	m := mapper.MustNew()
	_, err := nullable.Empty[string]().Get()

	st := grpcx.ToStatus(m, err)
	require.NotNil(t, st)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "Nullable's value must not be empty in this operation.", st.Message())

	info, ok := grpcx.ExtractErrorInfo(st.Err())
	require.True(t, ok)
	assert.Equal(t, "nullable.get.empty", info.GetReason())
	assert.Equal(t, grpcx.DefaultDomain, info.GetDomain())
	assert.Equal(t, "missing", info.GetMetadata()[grpcx.MetaCode])
	assert.Equal(t, "get", info.GetMetadata()[grpcx.MetaOp])
	assert.Equal(t, "400", info.GetMetadata()[grpcx.MetaHTTPStatus])
	assert.Contains(t, info.GetMetadata()[grpcx.MetaAt], "grpcx_test.go#")
	assert.NotContains(t, info.GetMetadata(), grpcx.MetaCause)

	dbg, ok := grpcx.ExtractDebugInfo(st.Err())
	require.True(t, ok)
	require.NotEmpty(t, dbg.GetStackEntries())
	assert.Contains(t, dbg.GetStackEntries()[0], "TestToStatus_EmptyValue")
	assert.Equal(t, err.Error(), dbg.GetDetail())
}

func TestToStatus_IncompleteWithCause(t *testing.T) {
	m := mapper.MustNew(mapper.WithPrefix("aborted", "nullable.map", 422, codes.InvalidArgument))
	_, err := nullable.Map(nullable.Of(1), func(int) (int, error) { return 0, io.ErrUnexpectedEOF })

	st := grpcx.ToStatus(m, err, grpcx.WithDomain("example.com"), grpcx.WithDebugInfo(false))
	assert.Equal(t, codes.InvalidArgument, st.Code())

	info, ok := grpcx.ExtractErrorInfo(st.Err())
	require.True(t, ok)
	assert.Equal(t, "example.com", info.GetDomain())
	assert.Equal(t, "unexpected EOF", info.GetMetadata()[grpcx.MetaCause])
	assert.Equal(t, "422", info.GetMetadata()[grpcx.MetaHTTPStatus])

	_, ok = grpcx.ExtractDebugInfo(st.Err())
	assert.False(t, ok, "DebugInfo must be omitted when disabled")
}

func TestToStatus_PlainErrors(t *testing.T) {
	m := mapper.MustNew()
	assert.Nil(t, grpcx.ToStatus(m, nil))

	st := grpcx.ToStatus(m, errors.New("plain"))
	assert.Equal(t, codes.Unknown, st.Code())
	assert.Equal(t, "plain", st.Message())

	_, ok := grpcx.ExtractErrorInfo(st.Err())
	assert.False(t, ok)
}

func TestUnaryServerInterceptor(t *testing.T) {
	meta := func(ctx context.Context, _ nullable.Diagnosable) grpcx.Extras {
		id, _ := ctx.Value(ctxKey{}).(string)
		return grpcx.Extras{CorrelationID: id, RetryDelay: 2 * time.Second}
	}
	icpt := grpcx.UnaryServerInterceptor(mapper.MustNew(), grpcx.WithMeta(meta))
	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	info := &grpc.UnaryServerInfo{FullMethod: "/svc.Users/Get"}

	t.Run("success", func(t *testing.T) {
		resp, err := icpt(ctx, "in", info, func(context.Context, any) (any, error) { return "out", nil })
		require.NoError(t, err)
		assert.Equal(t, "out", resp)
	})

	t.Run("diagnosable", func(t *testing.T) {
		_, err := icpt(ctx, "in", info, func(context.Context, any) (any, error) {
			return nil, nullable.Of(1).IfPresent(nil)
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, gstatus.Code(err))

		ei, ok := grpcx.ExtractErrorInfo(err)
		require.True(t, ok)
		assert.Equal(t, "nullable.if_present.uncallable", ei.GetReason())
		assert.Equal(t, "req-1", ei.GetMetadata()[grpcx.MetaCorrelationID])

		ri, ok := grpcx.ExtractRetryInfo(err)
		require.True(t, ok)
		assert.Equal(t, 2*time.Second, ri.GetRetryDelay().AsDuration())
	})

	t.Run("foreign error passes through", func(t *testing.T) {
		foreign := errors.New("foreign")
		_, err := icpt(ctx, "in", info, func(context.Context, any) (any, error) { return nil, foreign })
		assert.Same(t, foreign, err)
	})
}

type ctxKey struct{}

type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f *fakeStream) Context() context.Context { return f.ctx }

func TestStreamServerInterceptor(t *testing.T) {
	links := []*errdetails.Help_Link{{Description: "docs", Url: "https://dirpx.dev/nullable"}}
	icpt := grpcx.StreamServerInterceptor(mapper.MustNew(), grpcx.WithMeta(
		func(context.Context, nullable.Diagnosable) grpcx.Extras { return grpcx.Extras{Links: links} },
	))
	ss := &fakeStream{ctx: context.Background()}

	err := icpt(nil, ss, &grpc.StreamServerInfo{}, func(any, grpc.ServerStream) error {
		_, err := nullable.Empty[int]().OrElseGet(func() (int, error) { panic("boom") })
		return err
	})
	require.Error(t, err)
	assert.Equal(t, codes.Aborted, gstatus.Code(err))

	info, ok := grpcx.ExtractErrorInfo(err)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(info.GetMetadata()[grpcx.MetaCause], "panic: boom"))

	st, _ := gstatus.FromError(err)
	var help *errdetails.Help
	for _, d := range st.Details() {
		if h, ok := d.(*errdetails.Help); ok {
			help = h
		}
	}
	require.NotNil(t, help)
	assert.Equal(t, "https://dirpx.dev/nullable", help.GetLinks()[0].GetUrl())

	require.NoError(t, icpt(nil, ss, &grpc.StreamServerInfo{}, func(any, grpc.ServerStream) error { return nil }))
}
