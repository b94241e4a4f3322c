package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// LikeTarget discriminates what a like points at. Exactly one target per like
// is structural: a like holds a single (TargetType, TargetID) pair instead of
// one optional reference field per entity kind.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

type Like struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	TargetType LikeTarget    `bson:"target_type" json:"target_type"`
	TargetID   bson.ObjectID `bson:"target_id" json:"target_id"`
	LikedBy    bson.ObjectID `bson:"liked_by" json:"liked_by"`
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updated_at"`
}
