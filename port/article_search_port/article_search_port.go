package article_search_port

//go:generate go run go.uber.org/mock/mockgen -source=article_search_port.go -destination=../../mocks/mock_article_search_port.go -package=mocks ArticleSearchPort

import (
	"context"

	"wikifeed/domain"
)

// ArticleSearchPort covers the two degenerate scoring modes: keyword search
// and category browse. Both return articles in descending access-count
// order.
type ArticleSearchPort interface {
	SearchArticles(ctx context.Context, query string, limit int) ([]*domain.Article, error)
	BrowseByCategory(ctx context.Context, category domain.Category, limit int) ([]*domain.Article, error)
}
