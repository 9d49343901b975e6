package job

import (
	"context"
	"strings"
	"testing"
	"time"

	"wikifeed/config"
	"wikifeed/domain"
	"wikifeed/mocks"
	"wikifeed/usecase/ingest_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewIngestJob(t *testing.T) {
	cfg := &config.Config{}
	cfg.Ingest.BatchSize = 2
	cfg.Ingest.MinArticleWords = 10
	cfg.Ingest.MaxCategoriesPerEntry = 20
	cfg.Ingest.JobInterval = time.Hour
	cfg.Ingest.JobTimeout = time.Minute

	body := strings.Repeat("theory of heat transfer in physics ", 10)

	ctrl := gomock.NewController(t)
	mockSource := mocks.NewMockWikipediaSourcePort(ctrl)
	mockSource.EXPECT().FetchRandomArticles(gomock.Any(), 2).
		Return([]*domain.SourceArticle{
			{PageID: 101, Title: "Thermodynamics", Extract: "Heat.", Content: body},
			{PageID: 102, Title: "Stub", Extract: "Too short.", Content: "tiny"},
		}, nil)

	mockStore := mocks.NewMockArticleStorePort(ctrl)
	mockStore.EXPECT().SaveArticle(gomock.Any(), gomock.Any()).Return(nil)

	ingestUsecase := ingest_usecase.NewIngestUsecase(mockSource, mockStore, cfg.Ingest)
	ingestJob := NewIngestJob(ingestUsecase, cfg)

	assert.Equal(t, "wikipedia_ingest", ingestJob.Name)
	assert.Equal(t, time.Hour, ingestJob.Interval)
	assert.Equal(t, time.Minute, ingestJob.Timeout)

	require.NoError(t, ingestJob.Fn(context.Background()))
}
