package persistence

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"
	"vidtube/infrastructure/utils"
)

const videoCollection = "videos"

type VideoRepository struct {
	db *mongo.Database
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) collection() *mongo.Collection {
	return r.db.Collection(videoCollection)
}

// listFilter translates a validated list request into a store filter. The
// title match is a case-insensitive substring match; the raw query is quoted
// so it is never interpreted as a pattern.
func listFilter(req dto.VideoListRequest) (bson.M, error) {
	filter := bson.M{}
	if req.Query != "" {
		filter["title"] = bson.Regex{Pattern: regexp.QuoteMeta(req.Query), Options: "i"}
	}
	if req.UserID != "" {
		owner, err := bson.ObjectIDFromHex(req.UserID)
		if err != nil {
			return nil, err
		}
		filter["owner"] = owner
	}
	return filter, nil
}

func (r *VideoRepository) Search(ctx context.Context, req dto.VideoListRequest) ([]model.Video, error) {
	filter, err := listFilter(req)
	if err != nil {
		return nil, err
	}

	direction := -1
	if req.SortType == dto.SortAsc {
		direction = 1
	}
	// An unknown sortBy field is passed through; the store decides the order.
	opts := options.Find().
		SetSort(bson.D{{Key: req.SortBy, Value: direction}}).
		SetSkip(int64(req.Skip())).
		SetLimit(int64(req.Limit))

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	videos := make([]model.Video, 0, req.Limit)
	for cursor.Next(ctx) {
		var video model.Video
		if err := cursor.Decode(&video); err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *VideoRepository) Count(ctx context.Context, req dto.VideoListRequest) (int64, error) {
	filter, err := listFilter(req)
	if err != nil {
		return 0, err
	}
	return r.collection().CountDocuments(ctx, filter)
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	var video model.Video
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error) {
	cursor, err := r.collection().Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	videos := []model.Video{}
	for cursor.Next(ctx) {
		var video model.Video
		if err := cursor.Decode(&video); err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *VideoRepository) Create(ctx context.Context, video model.Video) (*model.Video, error) {
	now := utils.GetCurrentTime()
	video.CreatedAt = now
	video.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, video)
	if err != nil {
		return nil, err
	}
	video.ID = res.InsertedID.(bson.ObjectID)
	return &video, nil
}

func (r *VideoRepository) UpdateByID(ctx context.Context, id bson.ObjectID, req dto.VideoUpdateRequest) (*model.Video, error) {
	set := bson.M{"updated_at": utils.GetCurrentTime()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Thumbnail != nil {
		set["thumbnail"] = *req.Thumbnail
	}
	return r.findOneAndSet(ctx, id, set)
}

func (r *VideoRepository) SetPublished(ctx context.Context, id bson.ObjectID, published bool) (*model.Video, error) {
	return r.findOneAndSet(ctx, id, bson.M{
		"is_published": published,
		"updated_at":   utils.GetCurrentTime(),
	})
}

func (r *VideoRepository) findOneAndSet(ctx context.Context, id bson.ObjectID, set bson.M) (*model.Video, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var video model.Video
	err := r.collection().
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).
		Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) DeleteByID(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	var video model.Video
	err := r.collection().FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}
