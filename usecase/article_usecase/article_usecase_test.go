package article_usecase

import (
	"context"
	"testing"

	"wikifeed/domain"
	"wikifeed/mocks"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestArticleUsecase_FetchArticle(t *testing.T) {
	logger.InitLogger()
	articleID := uuid.New()

	t.Run("serving an article counts as an access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := mocks.NewMockArticleStorePort(ctrl)

		mockStore.EXPECT().FetchArticleByID(gomock.Any(), articleID).
			Return(&domain.Article{ID: articleID, Title: "Photosynthesis", AccessCount: 9}, nil)
		mockStore.EXPECT().IncrementAccessCount(gomock.Any(), articleID).Return(nil)

		article, err := NewArticleUsecase(mockStore).FetchArticle(context.Background(), articleID)

		require.NoError(t, err)
		assert.Equal(t, "Photosynthesis", article.Title)
		assert.Equal(t, 10, article.AccessCount)
	})

	t.Run("a failed counter bump still serves the article", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := mocks.NewMockArticleStorePort(ctrl)

		mockStore.EXPECT().FetchArticleByID(gomock.Any(), articleID).
			Return(&domain.Article{ID: articleID, AccessCount: 9}, nil)
		mockStore.EXPECT().IncrementAccessCount(gomock.Any(), articleID).
			Return(domain.ErrArticleNotFound)

		article, err := NewArticleUsecase(mockStore).FetchArticle(context.Background(), articleID)

		require.NoError(t, err)
		assert.Equal(t, 9, article.AccessCount)
	})

	t.Run("unknown article is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := mocks.NewMockArticleStorePort(ctrl)

		mockStore.EXPECT().FetchArticleByID(gomock.Any(), articleID).
			Return(nil, domain.ErrArticleNotFound)

		_, err := NewArticleUsecase(mockStore).FetchArticle(context.Background(), articleID)
		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	})

	t.Run("rejects nil id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usecase := NewArticleUsecase(mocks.NewMockArticleStorePort(ctrl))

		_, err := usecase.FetchArticle(context.Background(), uuid.Nil)
		assert.Error(t, err)
	})
}
