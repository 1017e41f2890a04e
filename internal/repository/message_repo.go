package repository

import (
	"context"
	"time"

	"amora-backend/internal/database"
	"amora-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MessageRepo struct {
	collection *mongo.Collection
}

func NewMessageRepo() *MessageRepo {
	return &MessageRepo{
		collection: database.GetCollection("messages"),
	}
}

func (r *MessageRepo) Create(ctx context.Context, message *models.Message) error {
	message.SentAt = time.Now()
	result, err := r.collection.InsertOne(ctx, message)
	if err != nil {
		return err
	}
	message.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// FindByMatch returns a match's messages in ascending send order.
func (r *MessageRepo) FindByMatch(ctx context.Context, matchID bson.ObjectID) ([]*models.Message, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"match_id": matchID},
		options.Find().SetSort(bson.D{{Key: "sent_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead stamps read_at on every unread message addressed to the reader.
// Already-read messages keep their original timestamp.
func (r *MessageRepo) MarkRead(ctx context.Context, matchID, readerID bson.ObjectID) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{
			"match_id":    matchID,
			"receiver_id": readerID,
			"read_at":     nil,
		},
		bson.M{"$set": bson.M{"read_at": time.Now()}},
	)
	return err
}

func (r *MessageRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates necessary indexes for the messages collection
func (r *MessageRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "match_id", Value: 1}, {Key: "sent_at", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "receiver_id", Value: 1}, {Key: "read_at", Value: 1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
