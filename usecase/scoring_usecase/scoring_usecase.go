package scoring_usecase

import (
	"context"
	"math"
	"sort"
	"strings"

	"wikifeed/domain"
	"wikifeed/port/article_search_port"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"
)

const (
	// neutralCategoryScore applies when none of an article's categories
	// carry a learned weight.
	neutralCategoryScore = 0.5

	categoryWeight   = 0.7
	popularityWeight = 0.3

	// popularityPivot is the access count at which the popularity term
	// saturates; popularityScale keeps the saturated boost small relative
	// to the category signal.
	popularityPivot = 100.0
	popularityScale = 0.2
)

type ScoringUsecase struct {
	searchGateway article_search_port.ArticleSearchPort
}

func NewScoringUsecase(searchGateway article_search_port.ArticleSearchPort) *ScoringUsecase {
	return &ScoringUsecase{
		searchGateway: searchGateway,
	}
}

// ScoreArticles ranks candidates against the user's preference weights.
// The input slice is untouched; ties keep their candidate order, so equal
// scores rank deterministically.
func ScoreArticles(articles []*domain.Article, preferences domain.PreferenceWeights) []domain.ScoredArticle {
	scored := make([]domain.ScoredArticle, 0, len(articles))
	for _, article := range articles {
		scored = append(scored, domain.ScoredArticle{
			Article: article,
			Score:   ScoreArticle(article, preferences),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// ScoreArticle combines the best matching category weight with a popularity
// term. The category side ranges [-1, 1], popularity [0, 0.2], preserving
// the sign of a disliked category.
func ScoreArticle(article *domain.Article, preferences domain.PreferenceWeights) float64 {
	categoryScore := neutralCategoryScore
	matched := false
	for _, category := range article.Categories {
		weight, ok := preferences[category]
		if !ok {
			continue
		}
		if !matched || weight > categoryScore {
			categoryScore = weight
			matched = true
		}
	}

	popularityBoost := math.Min(float64(article.AccessCount)/popularityPivot, 1.0) * popularityScale

	return categoryScore*categoryWeight + popularityBoost*popularityWeight
}

// Search finds articles whose title or content contains the query,
// case-insensitively, ordered by popularity.
func (u *ScoringUsecase) Search(ctx context.Context, query string, limit int) ([]*domain.Article, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.ValidationError("query must not be empty", nil)
	}

	if limit <= 0 {
		return nil, errors.ValidationError("limit must be greater than 0", map[string]interface{}{
			"limit": limit,
		})
	}

	articles, err := u.searchGateway.SearchArticles(ctx, query, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to search articles", "error", err, "query", query)
		return nil, err
	}

	return articles, nil
}

// Browse lists a single category by popularity with no personalization.
func (u *ScoringUsecase) Browse(ctx context.Context, category domain.Category, limit int) ([]*domain.Article, error) {
	if !category.IsValid() {
		return nil, errors.ValidationError("unknown category", map[string]interface{}{
			"category": string(category),
		})
	}

	if limit <= 0 {
		return nil, errors.ValidationError("limit must be greater than 0", map[string]interface{}{
			"limit": limit,
		})
	}

	articles, err := u.searchGateway.BrowseByCategory(ctx, category, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to browse category", "error", err, "category", category)
		return nil, err
	}

	return articles, nil
}
