package stats_port

//go:generate go run go.uber.org/mock/mockgen -source=stats_port.go -destination=../../mocks/mock_stats_port.go -package=mocks StatsPort

import (
	"context"

	"wikifeed/domain"
)

// StatsPort reads store-wide counters for the stats endpoint.
type StatsPort interface {
	FetchStats(ctx context.Context) (*domain.Stats, error)
}
