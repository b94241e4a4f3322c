package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/model"
)

type IUser interface {
	GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	GetByUserName(ctx context.Context, userName string) (*model.User, error)
	Create(ctx context.Context, user model.User) (*model.User, error)
}
