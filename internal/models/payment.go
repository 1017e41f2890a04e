package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Subscription struct {
	ID                   bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID               string        `bson:"user_id" json:"user_id"`
	PlanType             string        `bson:"plan_type" json:"plan_type"`
	Price                float64       `bson:"price" json:"price"`
	Status               string        `bson:"status" json:"status"`
	StripeSubscriptionID string        `bson:"stripe_subscription_id" json:"stripe_subscription_id"`
	StartDate            time.Time     `bson:"start_date" json:"start_date"`
}

type PowerUpPurchase struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string        `bson:"user_id" json:"user_id"`
	PowerUpType     string        `bson:"power_up_type" json:"power_up_type"`
	Price           float64       `bson:"price" json:"price"`
	StripePaymentID string        `bson:"stripe_payment_id" json:"stripe_payment_id"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
}
