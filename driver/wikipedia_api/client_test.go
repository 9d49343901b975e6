package wikipedia_api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wikifeed/config"
	"wikifeed/domain"
	"wikifeed/utils/logger"

	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) (*WikipediaClient, *httptest.Server) {
	t.Helper()
	logger.InitLogger()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Wikipedia.RestBaseURL = server.URL
	cfg.Wikipedia.ActionBaseURL = server.URL + "/w/api.php"
	cfg.Wikipedia.UserAgent = "wikifeed-test"
	cfg.Wikipedia.FetchInterval = time.Millisecond
	cfg.HTTP.ClientTimeout = 5 * time.Second
	cfg.HTTP.DialTimeout = 5 * time.Second
	cfg.HTTP.IdleConnTimeout = time.Second
	cfg.Ingest.MaxConcurrentFetches = 2

	return NewWikipediaClient(cfg), server
}

func TestWikipediaClient_FetchArticleByTitle(t *testing.T) {
	t.Run("ParsesExtractAndCategories", func(t *testing.T) {
		var gotUserAgent string
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserAgent = r.Header.Get("User-Agent")
			require.Equal(t, "Photosynthesis", r.URL.Query().Get("titles"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"query": {"pages": {"1234": {
					"pageid": 1234,
					"title": "Photosynthesis",
					"extract": "<p>Photosynthesis is a process used by plants.</p><p>It converts light energy.</p>",
					"categories": [
						{"title": "Category:Plant physiology"},
						{"title": "Category:Biochemistry"}
					]
				}}}
			}`))
		}))

		article, err := client.FetchArticleByTitle(context.Background(), "Photosynthesis")

		require.NoError(t, err)
		require.Equal(t, int64(1234), article.PageID)
		require.Equal(t, "Photosynthesis", article.Title)
		require.Equal(t, []string{"Plant physiology", "Biochemistry"}, article.Tags)
		require.Contains(t, article.Content, "process used by plants")
		require.Equal(t, "wikifeed-test", gotUserAgent)
	})

	t.Run("MissingPageIsNotFound", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"query": {"pages": {"-1": {"title": "Nope", "missing": {}}}}}`))
		}))

		_, err := client.FetchArticleByTitle(context.Background(), "Nope")
		require.ErrorIs(t, err, domain.ErrArticleNotFound)
	})
}

func TestWikipediaClient_FetchRandomArticles(t *testing.T) {
	t.Run("SkipsFailedFetches", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))

		articles, err := client.FetchRandomArticles(context.Background(), 3)

		require.NoError(t, err)
		require.Empty(t, articles)
	})

	t.Run("CollectsSummaryAndDetail", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Path == "/page/random/summary" {
				_, _ = w.Write([]byte(`{
					"pageid": 77, "title": "Comet",
					"extract": "A comet is an icy body.",
					"thumbnail": {"source": "https://img.example/comet.jpg"}
				}`))
				return
			}
			_, _ = w.Write([]byte(`{
				"query": {"pages": {"77": {
					"pageid": 77, "title": "Comet",
					"extract": "<p>A comet is an icy body that releases gas.</p>",
					"categories": [{"title": "Category:Comets"}]
				}}}
			}`))
		}))

		articles, err := client.FetchRandomArticles(context.Background(), 2)

		require.NoError(t, err)
		require.Len(t, articles, 2)
		for _, article := range articles {
			require.Equal(t, "Comet", article.Title)
			require.Equal(t, []string{"Comets"}, article.Tags)
			require.Equal(t, "https://img.example/comet.jpg", article.Thumbnail)
		}
	})
}
