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

type InteractionRepo struct {
	collection *mongo.Collection
}

func NewInteractionRepo() *InteractionRepo {
	return &InteractionRepo{
		collection: database.GetCollection("interactions"),
	}
}

func (r *InteractionRepo) Create(ctx context.Context, interaction *models.Interaction) error {
	interaction.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, interaction)
	if err != nil {
		return err
	}
	interaction.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// TargetIDs returns every user the given user has recorded any interaction
// with. Used to exclude seen candidates from the swipe deck.
func (r *InteractionRepo) TargetIDs(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetProjection(bson.M{"target_user_id": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		TargetUserID bson.ObjectID `bson:"target_user_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]bson.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.TargetUserID)
	}
	return ids, nil
}

// FindMutualLike looks for a prior like/super_like from target back at user.
func (r *InteractionRepo) FindMutualLike(ctx context.Context, userID, targetID bson.ObjectID) (*models.Interaction, error) {
	var interaction models.Interaction
	err := r.collection.FindOne(ctx, bson.M{
		"user_id":        targetID,
		"target_user_id": userID,
		"action":         bson.M{"$in": []string{models.ActionLike, models.ActionSuperLike}},
	}).Decode(&interaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &interaction, nil
}

// CountByUser counts interactions the user sent with any of the actions.
func (r *InteractionRepo) CountByUser(ctx context.Context, userID bson.ObjectID, actions ...string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"action":  bson.M{"$in": actions},
	})
}

// CountByTarget counts interactions the user received with any of the actions.
func (r *InteractionRepo) CountByTarget(ctx context.Context, targetID bson.ObjectID, actions ...string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"target_user_id": targetID,
		"action":         bson.M{"$in": actions},
	})
}

// DistinctActiveUsers returns the distinct users with any interaction since
// the given time.
func (r *InteractionRepo) DistinctActiveUsers(ctx context.Context, since time.Time) ([]bson.ObjectID, error) {
	var ids []bson.ObjectID
	err := r.collection.Distinct(ctx, "user_id", bson.M{
		"created_at": bson.M{"$gte": since},
	}).Decode(&ids)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// EnsureIndexes creates necessary indexes for the interactions collection
func (r *InteractionRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "target_user_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "target_user_id", Value: 1}, {Key: "action", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
