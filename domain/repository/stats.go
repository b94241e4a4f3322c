package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// IChannelStats exposes the four per-channel aggregate reads. Each one is a
// disjoint query; callers may issue them concurrently.
type IChannelStats interface {
	CountVideos(ctx context.Context, channel bson.ObjectID) (int64, error)
	CountSubscribers(ctx context.Context, channel bson.ObjectID) (int64, error)
	CountLikes(ctx context.Context, channel bson.ObjectID) (int64, error)
	SumVideoViews(ctx context.Context, channel bson.ObjectID) (int64, error)
}
