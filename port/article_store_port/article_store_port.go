package article_store_port

//go:generate go run go.uber.org/mock/mockgen -source=article_store_port.go -destination=../../mocks/mock_article_store_port.go -package=mocks ArticleStorePort

import (
	"context"

	"wikifeed/domain"

	"github.com/google/uuid"
)

// ArticleStorePort persists ingested articles and serves single-article
// reads. IncrementAccessCount must be an atomic single-row update.
type ArticleStorePort interface {
	SaveArticle(ctx context.Context, article *domain.Article) error
	FetchArticleByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	IncrementAccessCount(ctx context.Context, id uuid.UUID) error
}
