package ingest_usecase

import (
	"context"
	"strings"

	"wikifeed/classifier"
	"wikifeed/config"
	"wikifeed/domain"
	"wikifeed/port/article_store_port"
	"wikifeed/port/wikipedia_source_port"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"
	"wikifeed/utils/metrics"

	"github.com/google/uuid"
)

// IngestReport summarizes one ingestion run.
type IngestReport struct {
	Requested int `json:"requested"`
	Ingested  int `json:"ingested"`
	Skipped   int `json:"skipped"`
}

// IngestUsecase pulls articles from the live source, classifies them and
// stores them as feed candidates. Stubs below the minimum word count are
// skipped: they carry too little text to classify or to read.
type IngestUsecase struct {
	source       wikipedia_source_port.WikipediaSourcePort
	articleStore article_store_port.ArticleStorePort
	ingestConfig config.IngestConfig
}

func NewIngestUsecase(
	source wikipedia_source_port.WikipediaSourcePort,
	articleStore article_store_port.ArticleStorePort,
	ingestConfig config.IngestConfig,
) *IngestUsecase {
	return &IngestUsecase{
		source:       source,
		articleStore: articleStore,
		ingestConfig: ingestConfig,
	}
}

// IngestRandomArticles fetches count random articles and stores the ones
// that pass the length gate. Ingesting a page the store already holds
// refreshes it rather than duplicating it.
func (u *IngestUsecase) IngestRandomArticles(ctx context.Context, count int) (*IngestReport, error) {
	if count <= 0 {
		return nil, errors.ValidationError("count must be greater than 0", map[string]interface{}{
			"count": count,
		})
	}

	if count > u.ingestConfig.BatchSize {
		count = u.ingestConfig.BatchSize
	}

	sources, err := u.source.FetchRandomArticles(ctx, count)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch random articles", "error", err)
		return nil, err
	}

	report := &IngestReport{Requested: count}
	for _, source := range sources {
		article, ok := u.buildArticle(source)
		if !ok {
			report.Skipped++
			continue
		}

		if err := u.articleStore.SaveArticle(ctx, article); err != nil {
			logger.Logger.ErrorContext(ctx, "failed to save ingested article",
				"error", err, "title", article.Title)
			metrics.IngestFailures.Inc()
			report.Skipped++
			continue
		}

		metrics.ArticlesIngested.Inc()
		report.Ingested++
	}

	logger.Logger.InfoContext(ctx, "ingestion run finished",
		"requested", report.Requested,
		"ingested", report.Ingested,
		"skipped", report.Skipped)

	return report, nil
}

// IngestArticleByTitle fetches and stores one named article, returning the
// stored form.
func (u *IngestUsecase) IngestArticleByTitle(ctx context.Context, title string) (*domain.Article, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.ValidationError("title must not be empty", nil)
	}

	source, err := u.source.FetchArticleByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	article, ok := u.buildArticle(source)
	if !ok {
		return nil, errors.ValidationError("article is too short to ingest", map[string]interface{}{
			"title":     source.Title,
			"min_words": u.ingestConfig.MinArticleWords,
		})
	}

	if err := u.articleStore.SaveArticle(ctx, article); err != nil {
		metrics.IngestFailures.Inc()
		return nil, err
	}

	metrics.ArticlesIngested.Inc()
	return article, nil
}

func (u *IngestUsecase) buildArticle(source *domain.SourceArticle) (*domain.Article, bool) {
	wordCount := len(strings.Fields(source.Content))
	if wordCount < u.ingestConfig.MinArticleWords {
		return nil, false
	}

	return &domain.Article{
		ID:          uuid.New(),
		PageID:      source.PageID,
		Title:       source.Title,
		Content:     source.Content,
		Categories:  u.classify(source),
		WordCount:   wordCount,
		ReadingTime: domain.EstimateReadingTime(wordCount),
		Thumbnail:   source.Thumbnail,
	}, true
}

// classify prefers the source's own topic tags when present and falls back
// to keyword classification of the text. Tag lists are capped before
// mapping; beyond the cap they add noise, not signal.
func (u *IngestUsecase) classify(source *domain.SourceArticle) []domain.Category {
	tags := source.Tags
	if len(tags) > u.ingestConfig.MaxCategoriesPerEntry {
		tags = tags[:u.ingestConfig.MaxCategoriesPerEntry]
	}

	if len(tags) > 0 {
		return classifier.MapExternalCategories(tags)
	}

	return classifier.Classify(source.Title + " " + source.Content)
}
