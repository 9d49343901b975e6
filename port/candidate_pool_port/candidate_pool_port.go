package candidate_pool_port

//go:generate go run go.uber.org/mock/mockgen -source=candidate_pool_port.go -destination=../../mocks/mock_candidate_pool_port.go -package=mocks CandidatePoolPort

import (
	"context"

	"wikifeed/domain"

	"github.com/google/uuid"
)

// CandidateFilter narrows a candidate query. ExcludeIDs are never returned;
// CategoryIn, when non-empty, keeps only articles carrying at least one of
// the given categories.
type CandidateFilter struct {
	ExcludeIDs []uuid.UUID
	CategoryIn []domain.Category
	Limit      int
}

// CandidatePoolPort supplies scoring candidates. FetchCandidates returns
// articles in descending access-count order; FetchRandomCandidates samples
// uniformly without replacement.
type CandidatePoolPort interface {
	FetchCandidates(ctx context.Context, filter CandidateFilter) ([]*domain.Article, error)
	FetchRandomCandidates(ctx context.Context, excludeIDs []uuid.UUID, limit int) ([]*domain.Article, error)
}
