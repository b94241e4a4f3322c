package model

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserName  string        `bson:"user_name" json:"user_name"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Password  string        `bson:"password" json:"-"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

// UserClaims is the JWT payload issued at login and parsed by the auth middleware.
type UserClaims struct {
	Issuer    string `json:"iss"`
	UserName  string `json:"user_name"`
	ExpiresAt int64  `json:"exp"`
}

func (c UserClaims) Valid() error {
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return errors.New("token is expired")
	}
	return nil
}
