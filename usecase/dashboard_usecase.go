package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"
)

// IDashboardUsecase computes per-channel aggregate statistics.
type IDashboardUsecase interface {
	ChannelStats(ctx context.Context, channelID string) (*dto.ChannelStats, error)
}

type DashboardUsecase struct {
	statsRepo repository.IChannelStats
}

func NewDashboardUsecase(statsRepo repository.IChannelStats) IDashboardUsecase {
	return &DashboardUsecase{statsRepo: statsRepo}
}

// ChannelStats issues the four sub-queries concurrently and joins on all of
// them. Any sub-query failure fails the whole aggregation; partial stats are
// never returned.
func (u *DashboardUsecase) ChannelStats(ctx context.Context, channelID string) (*dto.ChannelStats, error) {
	channel, err := bson.ObjectIDFromHex(channelID)
	if err != nil {
		return nil, apperror.NewValidation("invalid channel ID")
	}

	var stats dto.ChannelStats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := u.statsRepo.CountVideos(ctx, channel)
		stats.TotalVideos = n
		return err
	})
	g.Go(func() error {
		n, err := u.statsRepo.CountSubscribers(ctx, channel)
		stats.TotalSubscribers = n
		return err
	})
	g.Go(func() error {
		n, err := u.statsRepo.CountLikes(ctx, channel)
		stats.TotalLikes = n
		return err
	})
	g.Go(func() error {
		n, err := u.statsRepo.SumVideoViews(ctx, channel)
		stats.TotalViews = n
		return err
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while aggregating channel stats")
		return nil, apperror.NewUpstream("failed to retrieve channel statistics", err)
	}
	return &stats, nil
}
