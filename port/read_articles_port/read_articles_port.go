package read_articles_port

//go:generate go run go.uber.org/mock/mockgen -source=read_articles_port.go -destination=../../mocks/mock_read_articles_port.go -package=mocks ReadArticlesPort

import (
	"context"

	"github.com/google/uuid"
)

// ReadArticlesPort lists the articles a user has already viewed or read,
// used to exclude them from future feeds.
type ReadArticlesPort interface {
	FetchReadArticleIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
