package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Video is a catalog record for an uploaded media file. URL and Owner are set
// once at creation and never change afterwards.
type Video struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Thumbnail   string        `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	URL         string        `bson:"url" json:"url"`
	Owner       bson.ObjectID `bson:"owner" json:"owner"`
	Views       int64         `bson:"views" json:"views"`
	IsPublished bool          `bson:"is_published" json:"is_published"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}
