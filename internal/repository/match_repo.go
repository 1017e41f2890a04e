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

type MatchRepo struct {
	collection *mongo.Collection
}

func NewMatchRepo() *MatchRepo {
	return &MatchRepo{
		collection: database.GetCollection("matches"),
	}
}

// Create inserts a match for the pair. The unique index on pair_key makes
// concurrent mutual swipes collide here; callers treat a duplicate-key
// error as "already matched" and look up the existing record.
func (r *MatchRepo) Create(ctx context.Context, match *models.Match) error {
	match.PairKey = models.PairKey(match.User1ID, match.User2ID)
	match.MatchedAt = time.Now()
	match.IsActive = true
	result, err := r.collection.InsertOne(ctx, match)
	if err != nil {
		return err
	}
	match.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// FindActiveByPair finds the active match between two users, either ordering.
func (r *MatchRepo) FindActiveByPair(ctx context.Context, a, b bson.ObjectID) (*models.Match, error) {
	var match models.Match
	err := r.collection.FindOne(ctx, bson.M{
		"pair_key":  models.PairKey(a, b),
		"is_active": true,
	}).Decode(&match)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *MatchRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Match, error) {
	var match models.Match
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&match)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

// FindAllForUser returns the user's active matches.
func (r *MatchRepo) FindAllForUser(ctx context.Context, userID bson.ObjectID) ([]*models.Match, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"$or": []bson.M{
			{"user1_id": userID},
			{"user2_id": userID},
		},
		"is_active": true,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var matches []*models.Match
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *MatchRepo) SetLastMessageAt(ctx context.Context, id bson.ObjectID, at time.Time) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"last_message_at": at},
	})
	return err
}

func (r *MatchRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates necessary indexes for the matches collection
func (r *MatchRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "pair_key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user1_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "user2_id", Value: 1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
