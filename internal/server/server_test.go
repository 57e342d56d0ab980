package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ArticlesRate/internal/adapters"
	"ArticlesRate/internal/domain"
	"ArticlesRate/internal/morph"
	"ArticlesRate/internal/usecase"
)

type staticFetcher struct {
	html string
}

func (s *staticFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return s.html, nil
}

func newTestServer(maxURLs int) *Server {
	registry := adapters.NewRegistry()
	registry.Register("test_example", func(html string, _ bool) (string, string, error) {
		return "Тестовая статья", html, nil
	})

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Fetcher:      &staticFetcher{html: "шок и сенсация"},
		Registry:     registry,
		Normalizer:   morph.NewDictionary(nil),
		ChargedWords: map[string]struct{}{"шок": {}, "сенсация": {}},
		Timeout:      time.Second,
	})

	return New(pipeline, maxURLs, nil)
}

func doRequest(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	recorder := httptest.NewRecorder()
	srv.Router().ServeHTTP(recorder, req)
	return recorder
}

func TestHandleAnalyze(t *testing.T) {
	srv := newTestServer(10)
	resp := doRequest(t, srv, "/?urls=http://test.example/a,https://unknown.site.com/b")

	require.Equal(t, http.StatusOK, resp.Code)

	var results []domain.ArticleRate
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &results))
	require.Len(t, results, 2)

	assert.Equal(t, domain.StatusOK, results[0].Status)
	require.NotNil(t, results[0].Rate)
	assert.InDelta(t, 100.0, *results[0].Rate, 0.001)
	require.NotNil(t, results[0].WordCount)
	assert.Equal(t, 2, *results[0].WordCount)

	assert.Equal(t, domain.StatusParsingError, results[1].Status)
	assert.Nil(t, results[1].Rate)
	assert.Nil(t, results[1].WordCount)
}

func TestHandleAnalyzeFailureMarshalsNulls(t *testing.T) {
	srv := newTestServer(10)
	resp := doRequest(t, srv, "/?urls=https://unknown.site.com/b")

	require.Equal(t, http.StatusOK, resp.Code)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &raw))
	require.Len(t, raw, 1)

	assert.Equal(t, "PARSING_ERROR", raw[0]["status"])
	assert.Contains(t, raw[0], "rate")
	assert.Nil(t, raw[0]["rate"])
	assert.Contains(t, raw[0], "count_words")
	assert.Nil(t, raw[0]["count_words"])
}

func TestHandleAnalyzeNoURLs(t *testing.T) {
	srv := newTestServer(10)

	for _, target := range []string{"/", "/?urls=", "/?urls=,,"} {
		resp := doRequest(t, srv, target)
		assert.Equal(t, http.StatusBadRequest, resp.Code, "target %q", target)
	}
}

func TestHandleAnalyzeTooManyURLs(t *testing.T) {
	srv := newTestServer(2)
	resp := doRequest(t, srv, "/?urls=http://a.b/1,http://a.b/2,http://a.b/3")

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "too many urls in request, should be 2 or less", body["error"])
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(10)
	resp := doRequest(t, srv, "/healthz")
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestParseURLList(t *testing.T) {
	assert.Nil(t, ParseURLList(""))
	assert.Equal(t, []string{"a", "b"}, ParseURLList(" a , b ,"))
	assert.Equal(t, []string{"a", "a"}, ParseURLList("a,a"))
}
