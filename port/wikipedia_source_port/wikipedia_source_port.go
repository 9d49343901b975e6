package wikipedia_source_port

//go:generate go run go.uber.org/mock/mockgen -source=wikipedia_source_port.go -destination=../../mocks/mock_wikipedia_source_port.go -package=mocks WikipediaSourcePort

import (
	"context"

	"wikifeed/domain"
)

// WikipediaSourcePort fetches raw articles from the live encyclopedia API.
// Implementations may return fewer articles than requested; callers treat a
// short or empty result as normal.
type WikipediaSourcePort interface {
	FetchRandomArticles(ctx context.Context, limit int) ([]*domain.SourceArticle, error)
	FetchArticleByTitle(ctx context.Context, title string) (*domain.SourceArticle, error)
}
