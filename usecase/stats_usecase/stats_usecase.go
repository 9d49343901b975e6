package stats_usecase

import (
	"context"

	"wikifeed/domain"
	"wikifeed/port/stats_port"
	"wikifeed/utils/logger"
)

type StatsUsecase struct {
	statsGateway stats_port.StatsPort
}

func NewStatsUsecase(statsGateway stats_port.StatsPort) *StatsUsecase {
	return &StatsUsecase{
		statsGateway: statsGateway,
	}
}

func (u *StatsUsecase) FetchStats(ctx context.Context) (*domain.Stats, error) {
	stats, err := u.statsGateway.FetchStats(ctx)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch stats", "error", err)
		return nil, err
	}

	return stats, nil
}
