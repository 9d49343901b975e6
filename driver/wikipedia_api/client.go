package wikipedia_api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"wikifeed/config"
	"wikifeed/domain"
	apperrors "wikifeed/utils/errors"
	"wikifeed/utils/logger"
	"wikifeed/utils/rate_limiter"

	"golang.org/x/sync/errgroup"
)

// WikipediaClient talks to the live Wikipedia HTTP APIs: the REST API for
// random page summaries and the action API for full extracts and category
// titles. All outbound requests go through a per-host rate limiter.
type WikipediaClient struct {
	restBaseURL   string
	actionBaseURL string
	userAgent     string
	httpClient    *http.Client
	limiter       *rate_limiter.HostRateLimiter
	maxConcurrent int
}

func NewWikipediaClient(cfg *config.Config) *WikipediaClient {
	return &WikipediaClient{
		restBaseURL:   strings.TrimRight(cfg.Wikipedia.RestBaseURL, "/"),
		actionBaseURL: cfg.Wikipedia.ActionBaseURL,
		userAgent:     cfg.Wikipedia.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.HTTP.ClientTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: cfg.HTTP.DialTimeout,
				}).DialContext,
				IdleConnTimeout: cfg.HTTP.IdleConnTimeout,
			},
		},
		limiter:       rate_limiter.NewHostRateLimiter(cfg.Wikipedia.FetchInterval),
		maxConcurrent: cfg.Ingest.MaxConcurrentFetches,
	}
}

type randomSummaryResponse struct {
	PageID    int64  `json:"pageid"`
	Title     string `json:"title"`
	Extract   string `json:"extract"`
	Thumbnail struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

type actionQueryResponse struct {
	Query struct {
		Pages map[string]struct {
			PageID     int64     `json:"pageid"`
			Title      string    `json:"title"`
			Missing    *struct{} `json:"missing,omitempty"`
			Extract    string    `json:"extract"`
			Categories []struct {
				Title string `json:"title"`
			} `json:"categories"`
		} `json:"pages"`
	} `json:"query"`
}

// FetchRandomArticles pulls up to limit random articles concurrently. A
// failed individual fetch is logged and skipped rather than failing the
// whole batch, so the result may be shorter than requested.
func (c *WikipediaClient) FetchRandomArticles(ctx context.Context, limit int) ([]*domain.SourceArticle, error) {
	var (
		mu       sync.Mutex
		articles []*domain.SourceArticle
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)

	for i := 0; i < limit; i++ {
		g.Go(func() error {
			summary, err := c.fetchRandomSummary(gctx)
			if err != nil {
				logger.SafeWarn("skipping random article", "error", err)
				return nil
			}

			article, err := c.FetchArticleByTitle(gctx, summary.Title)
			if err != nil {
				logger.SafeWarn("skipping article detail", "error", err, "title", summary.Title)
				return nil
			}

			if article.Extract == "" {
				article.Extract = summary.Extract
			}
			article.Thumbnail = summary.Thumbnail.Source

			mu.Lock()
			articles = append(articles, article)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return articles, nil
}

// FetchArticleByTitle fetches one article's plain-text content and category
// tags through the action API.
func (c *WikipediaClient) FetchArticleByTitle(ctx context.Context, title string) (*domain.SourceArticle, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("prop", "extracts|categories")
	params.Set("cllimit", "50")
	params.Set("redirects", "1")
	params.Set("titles", title)

	var response actionQueryResponse
	if err := c.getJSON(ctx, c.actionBaseURL+"?"+params.Encode(), &response); err != nil {
		return nil, err
	}

	for _, page := range response.Query.Pages {
		if page.Missing != nil || page.PageID == 0 {
			continue
		}

		tags := make([]string, 0, len(page.Categories))
		for _, category := range page.Categories {
			tags = append(tags, strings.TrimPrefix(category.Title, "Category:"))
		}

		content := htmlToText(page.Extract)
		return &domain.SourceArticle{
			PageID:  page.PageID,
			Title:   page.Title,
			Extract: firstParagraph(content),
			Content: content,
			Tags:    tags,
		}, nil
	}

	return nil, domain.ErrArticleNotFound
}

func (c *WikipediaClient) fetchRandomSummary(ctx context.Context) (*randomSummaryResponse, error) {
	var summary randomSummaryResponse
	if err := c.getJSON(ctx, c.restBaseURL+"/page/random/summary", &summary); err != nil {
		return nil, err
	}

	if summary.Title == "" {
		return nil, apperrors.ExternalAPIError("random summary missing title", nil, nil)
	}

	return &summary, nil
}

func (c *WikipediaClient) getJSON(ctx context.Context, requestURL string, out any) error {
	if err := c.limiter.WaitForHost(ctx, requestURL); err != nil {
		return apperrors.TimeoutError("rate limiter wait aborted", err, map[string]interface{}{
			"url": requestURL,
		})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return apperrors.ExternalAPIError("failed to create request", err, map[string]interface{}{
			"url": requestURL,
		})
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.ExternalAPIError("request failed", err, map[string]interface{}{
			"url": requestURL,
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return apperrors.ExternalAPIError(
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil,
			map[string]interface{}{
				"url":  requestURL,
				"body": string(body),
			})
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.ExternalAPIError("failed to decode response", err, map[string]interface{}{
			"url": requestURL,
		})
	}

	return nil
}
