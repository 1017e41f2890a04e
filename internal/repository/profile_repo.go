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

type ProfileRepo struct {
	collection *mongo.Collection
}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{
		collection: database.GetCollection("profiles"),
	}
}

func (r *ProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	result, err := r.collection.InsertOne(ctx, profile)
	if err != nil {
		return err
	}
	profile.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *ProfileRepo) FindByUserID(ctx context.Context, userID bson.ObjectID) (*models.Profile, error) {
	var profile models.Profile
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Update applies a partial $set built by the handler. Returns false when no
// profile exists for the user.
func (r *ProfileRepo) Update(ctx context.Context, userID bson.ObjectID, set bson.M) (bool, error) {
	set["updated_at"] = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// PushPhoto appends a photo; photos are never removed or reordered.
func (r *ProfileRepo) PushPhoto(ctx context.Context, userID bson.ObjectID, photo string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{
		"$push": bson.M{"photos": photo},
	})
	return err
}

// FindPotential returns profiles in the given city excluding the listed
// user ids (the caller plus everyone they already interacted with), in
// stored order.
func (r *ProfileRepo) FindPotential(ctx context.Context, city string, excludeUserIDs []bson.ObjectID) ([]*models.Profile, error) {
	filter := bson.M{
		"user_id":       bson.M{"$nin": excludeUserIDs},
		"location.city": city,
	}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(100))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates necessary indexes for the profiles collection
func (r *ProfileRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "location.city", Value: 1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
