package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Message struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	MatchID    bson.ObjectID `bson:"match_id" json:"match_id"`
	SenderID   bson.ObjectID `bson:"sender_id" json:"sender_id"`
	ReceiverID bson.ObjectID `bson:"receiver_id" json:"receiver_id"`
	Content    string        `bson:"content" json:"content"`
	SentAt     time.Time     `bson:"sent_at" json:"sent_at"`
	ReadAt     *time.Time    `bson:"read_at" json:"read_at,omitempty"`
}
