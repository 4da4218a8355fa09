package rpc

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/community-portal/internal/db"
	"github.com/daniilsolovey/community-portal/internal/domain"
	"github.com/daniilsolovey/community-portal/internal/fallback"
	"github.com/daniilsolovey/community-portal/internal/portal"
)

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := portal.NewManager(db.New(nil), fallback.New(), nil, logger, portal.Options{})

	srv := httptest.NewServer(New(logger, manager))
	t.Cleanup(srv.Close)

	return srv
}

func call(t *testing.T, srv *httptest.Server, method string, params any) rpcResponse {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	res, err := http.Post(srv.URL, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()

	var resp rpcResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))

	return resp
}

func TestPortalService_Homepage(t *testing.T) {
	srv := newTestServer(t)

	resp := call(t, srv, "portal.homepage", map[string]any{"communityId": "downtown-1"})
	require.Nil(t, resp.Error)

	var hp domain.Homepage
	require.NoError(t, json.Unmarshal(resp.Result, &hp))
	require.NotNil(t, hp.FeaturedNews)
	assert.Equal(t, "news-article-1", hp.FeaturedNews.Slug)
	assert.Len(t, hp.LatestNews, 4)
	assert.Len(t, hp.FeaturedBusinesses, portal.HomepageBusinessesLimit)

	positional := call(t, srv, "portal.homepage", []any{"downtown-1"})
	assert.Nil(t, positional.Error)

	missing := call(t, srv, "portal.homepage", map[string]any{})
	require.NotNil(t, missing.Error)
	assert.Equal(t, 400, missing.Error.Code)
}

func TestPortalService_Search(t *testing.T) {
	srv := newTestServer(t)

	resp := call(t, srv, "portal.search", map[string]any{
		"params": map[string]any{"query": "community", "scope": "news", "limit": 3},
	})
	require.Nil(t, resp.Error)

	var result domain.SearchResponse
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.Len(t, result.Results, 3)
	assert.True(t, result.HasMore)

	invalid := call(t, srv, "portal.search", map[string]any{
		"params": map[string]any{"sortBy": "random"},
	})
	require.NotNil(t, invalid.Error)
	assert.Equal(t, 400, invalid.Error.Code)
}

func TestPortalService_Article(t *testing.T) {
	srv := newTestServer(t)

	resp := call(t, srv, "portal.article", map[string]any{"slug": "park-reopens"})
	require.Nil(t, resp.Error)

	var article domain.NewsArticle
	require.NoError(t, json.Unmarshal(resp.Result, &article))
	assert.Equal(t, "park-reopens", article.Slug)
}

func TestPortalService_UnknownMethod(t *testing.T) {
	resp := call(t, newTestServer(t), "portal.unknown", nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)
}

func TestNewError(t *testing.T) {
	assert.Equal(t, 404, newError(domain.ErrNotFound).Code)
	assert.Equal(t, 400, newError(domain.ErrInvalidParams).Code)
	assert.Equal(t, 503, newError(io.ErrUnexpectedEOF).Code)
}
