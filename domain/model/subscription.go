package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscription links a subscriber to a channel (a user acting as video owner).
// This service only ever counts subscriptions; it never mutates them.
type Subscription struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Channel    bson.ObjectID `bson:"channel" json:"channel"`
	Subscriber bson.ObjectID `bson:"subscriber" json:"subscriber"`
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updated_at"`
}
