package wikipedia_source_gateway

import (
	"context"

	"wikifeed/config"
	"wikifeed/domain"
	"wikifeed/driver/wikipedia_api"
)

// WikipediaSourceGateway adapts the live API client to the source port. The
// client already wraps its failures, so this layer stays a pass-through.
type WikipediaSourceGateway struct {
	client *wikipedia_api.WikipediaClient
}

func NewWikipediaSourceGateway(cfg *config.Config) *WikipediaSourceGateway {
	return &WikipediaSourceGateway{
		client: wikipedia_api.NewWikipediaClient(cfg),
	}
}

func (g *WikipediaSourceGateway) FetchRandomArticles(ctx context.Context, limit int) ([]*domain.SourceArticle, error) {
	return g.client.FetchRandomArticles(ctx, limit)
}

func (g *WikipediaSourceGateway) FetchArticleByTitle(ctx context.Context, title string) (*domain.SourceArticle, error) {
	return g.client.FetchArticleByTitle(ctx, title)
}
