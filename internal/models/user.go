package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	FullName     string        `bson:"full_name" json:"full_name"`
	Gender       string        `bson:"gender" json:"gender"`
	DateOfBirth  string        `bson:"date_of_birth" json:"date_of_birth"` // YYYY-MM-DD
	IsActive     bool          `bson:"is_active" json:"is_active"`
	HasProfile   bool          `bson:"has_profile" json:"has_profile"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
}
