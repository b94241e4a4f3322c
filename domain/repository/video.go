package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/dto"
	"vidtube/domain/model"
)

// IVideo defines the video collection operations. Lookups that miss return
// (nil, nil) so callers decide how absence is reported.
type IVideo interface {
	// Search returns the requested page window; Count counts the full match
	// set independently of the window.
	Search(ctx context.Context, req dto.VideoListRequest) ([]model.Video, error)
	Count(ctx context.Context, req dto.VideoListRequest) (int64, error)

	GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error)
	Create(ctx context.Context, video model.Video) (*model.Video, error)
	UpdateByID(ctx context.Context, id bson.ObjectID, req dto.VideoUpdateRequest) (*model.Video, error)
	SetPublished(ctx context.Context, id bson.ObjectID, published bool) (*model.Video, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (*model.Video, error)
}
