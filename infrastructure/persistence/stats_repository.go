package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"
)

const (
	subscriptionCollection = "subscriptions"
	likeCollection         = "likes"
)

type ChannelStatsRepository struct {
	db *mongo.Database
}

func NewChannelStatsRepository(db *mongo.Database) repository.IChannelStats {
	return &ChannelStatsRepository{db: db}
}

func (r *ChannelStatsRepository) CountVideos(ctx context.Context, channel bson.ObjectID) (int64, error) {
	return r.db.Collection(videoCollection).CountDocuments(ctx, bson.M{"owner": channel})
}

func (r *ChannelStatsRepository) CountSubscribers(ctx context.Context, channel bson.ObjectID) (int64, error) {
	return r.db.Collection(subscriptionCollection).CountDocuments(ctx, bson.M{"channel": channel})
}

// CountLikes counts likes whose target is a video owned by the channel. Likes
// do not reference a channel directly, so the count joins through the videos
// collection.
func (r *ChannelStatsRepository) CountLikes(ctx context.Context, channel bson.ObjectID) (int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"target_type": model.LikeTargetVideo}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         videoCollection,
			"localField":   "target_id",
			"foreignField": "_id",
			"as":           "video",
		}}},
		bson.D{{Key: "$unwind", Value: "$video"}},
		bson.D{{Key: "$match", Value: bson.M{"video.owner": channel}}},
		bson.D{{Key: "$count", Value: "total"}},
	}
	return r.runScalar(ctx, likeCollection, pipeline, "total")
}

// SumVideoViews sums the views field over the channel's videos with a single
// match-then-group pipeline. A channel without videos sums to zero.
func (r *ChannelStatsRepository) SumVideoViews(ctx context.Context, channel bson.ObjectID) (int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": channel}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$views"},
		}}},
	}
	return r.runScalar(ctx, videoCollection, pipeline, "total")
}

// runScalar executes a pipeline expected to yield at most one document with a
// single int64 field. No document means zero.
func (r *ChannelStatsRepository) runScalar(ctx context.Context, coll string, pipeline mongo.Pipeline, field string) (int64, error) {
	cursor, err := r.db.Collection(coll).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	if cursor.Next(ctx) {
		var row bson.M
		if err := cursor.Decode(&row); err != nil {
			return 0, err
		}
		switch v := row[field].(type) {
		case int32:
			return int64(v), nil
		case int64:
			return v, nil
		case float64:
			return int64(v), nil
		}
	}
	if err := cursor.Err(); err != nil {
		return 0, err
	}
	return 0, nil
}
