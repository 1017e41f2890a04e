package repository

import (
	"context"
	"time"

	"amora-backend/internal/database"
	"amora-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// PaymentRepo stores records produced by the (mocked) payment provider.
type PaymentRepo struct {
	subscriptions *mongo.Collection
	powerups      *mongo.Collection
}

func NewPaymentRepo() *PaymentRepo {
	return &PaymentRepo{
		subscriptions: database.GetCollection("subscriptions"),
		powerups:      database.GetCollection("powerup_purchases"),
	}
}

func (r *PaymentRepo) CreateSubscription(ctx context.Context, sub *models.Subscription) error {
	sub.StartDate = time.Now()
	result, err := r.subscriptions.InsertOne(ctx, sub)
	if err != nil {
		return err
	}
	sub.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *PaymentRepo) CreatePowerUpPurchase(ctx context.Context, purchase *models.PowerUpPurchase) error {
	purchase.CreatedAt = time.Now()
	result, err := r.powerups.InsertOne(ctx, purchase)
	if err != nil {
		return err
	}
	purchase.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// EnsureIndexes creates necessary indexes for the payment collections
func (r *PaymentRepo) EnsureIndexes(ctx context.Context) error {
	if _, err := r.subscriptions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	}); err != nil {
		return err
	}
	_, err := r.powerups.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
