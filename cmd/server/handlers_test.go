package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_text_frequency/internal/adapters/logger"
	"github.com/baditaflorin/go_text_frequency/internal/testutil"
	"github.com/baditaflorin/go_text_frequency/pkg/frequency"
)

func newTestServer(t *testing.T) *server {
	t.Helper()
	a, err := frequency.New(
		frequency.WithPortLogger(logger.Nop()),
		frequency.WithCollaborators(testutil.Collaborators()),
	)
	require.NoError(t, err)
	return newServer(a, logger.Nop(), time.Second)
}

func do(s *server, method, uri, body string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	s.requestHandler(&ctx)
	return &ctx
}

func TestAnalyzeHandler(t *testing.T) {
	s := newTestServer(t)

	ctx := do(s, fasthttp.MethodPost, "/analyze",
		`{"text":"The cat sat. The CAT sat!","options":{"lowercase":true,"remove_punctuation":true},"top":2}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, 6, resp.TotalTokens)
	assert.Equal(t, 3, resp.DistinctTokens)
	assert.Equal(t, 2, resp.SliceSize)
	require.Len(t, resp.Top, 2)
	assert.Equal(t, "the", resp.Top[0].Token)
	assert.Equal(t, "cat", resp.Bottom[0].Token)
	assert.Equal(t, "lowercase+punctuation", resp.Options)
	assert.Len(t, resp.Tokens, 6)
}

func TestAnalyzeHandler_DefaultTop(t *testing.T) {
	s := newTestServer(t)

	ctx := do(s, fasthttp.MethodPost, "/analyze", `{"text":"a b"}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, frequency.DefaultSliceSize, resp.SliceSize)
}

func TestRequestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		uri    string
		body   string
		status int
	}{
		{name: "wrong method", method: fasthttp.MethodGet, uri: "/analyze", status: fasthttp.StatusMethodNotAllowed},
		{name: "bad json", method: fasthttp.MethodPost, uri: "/analyze", body: "{", status: fasthttp.StatusBadRequest},
		{name: "empty text", method: fasthttp.MethodPost, uri: "/analyze", body: `{"text":"  "}`, status: fasthttp.StatusBadRequest},
		{name: "negative top", method: fasthttp.MethodPost, uri: "/analyze", body: `{"text":"a","top":-1}`, status: fasthttp.StatusBadRequest},
		{name: "unknown path", method: fasthttp.MethodGet, uri: "/length", status: fasthttp.StatusNotFound},
	}

	s := newTestServer(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := do(s, tc.method, tc.uri, tc.body)
			assert.Equal(t, tc.status, ctx.Response.StatusCode())

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHealthHandler(t *testing.T) {
	ctx := do(newTestServer(t), fasthttp.MethodGet, "/health", "")

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `"status":"ok"`)
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))
}
