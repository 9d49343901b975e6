package article_usecase

import (
	"context"
	stderrors "errors"

	"wikifeed/domain"
	"wikifeed/port/article_store_port"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
)

type ArticleUsecase struct {
	articleStore article_store_port.ArticleStorePort
}

func NewArticleUsecase(articleStore article_store_port.ArticleStorePort) *ArticleUsecase {
	return &ArticleUsecase{
		articleStore: articleStore,
	}
}

// FetchArticle returns one article and bumps its popularity counter.
// Serving an article counts as an access even if the caller never records
// an engagement event for it.
func (u *ArticleUsecase) FetchArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if id == uuid.Nil {
		return nil, errors.ValidationError("article id must not be empty", nil)
	}

	article, err := u.articleStore.FetchArticleByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, domain.ErrArticleNotFound) {
			return nil, err
		}
		logger.Logger.ErrorContext(ctx, "failed to fetch article", "error", err, "id", id)
		return nil, err
	}

	if err := u.articleStore.IncrementAccessCount(ctx, id); err != nil {
		// The article was already served; a failed counter bump is not
		// worth failing the request over.
		logger.Logger.WarnContext(ctx, "failed to increment access count", "error", err, "id", id)
	} else {
		article.AccessCount++
	}

	return article, nil
}
