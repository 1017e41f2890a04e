package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Location struct {
	City         string  `bson:"city" json:"city"`
	Neighborhood string  `bson:"neighborhood" json:"neighborhood"`
	Lat          float64 `bson:"lat" json:"lat"`
	Lng          float64 `bson:"lng" json:"lng"`
}

type Profile struct {
	ID                 bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             bson.ObjectID `bson:"user_id" json:"user_id"`
	Bio                string        `bson:"bio" json:"bio"`
	Age                int           `bson:"age" json:"age"`
	Interests          []string      `bson:"interests" json:"interests"`
	Photos             []string      `bson:"photos" json:"photos"` // URLs or base64, append-only
	Location           Location      `bson:"location" json:"location"`
	LookingFor         string        `bson:"looking_for" json:"looking_for"` // "relationship", "dating", "friends"
	IsVerified         bool          `bson:"is_verified" json:"is_verified"`
	VerificationPhotos []string      `bson:"verification_photos" json:"verification_photos"`
	CreatedAt          time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time     `bson:"updated_at" json:"updated_at"`
}
