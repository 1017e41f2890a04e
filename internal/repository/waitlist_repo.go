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

type WaitlistRepo struct {
	collection *mongo.Collection
}

func NewWaitlistRepo() *WaitlistRepo {
	return &WaitlistRepo{
		collection: database.GetCollection("waitlist"),
	}
}

// Create inserts a new entrant. Both email and referral_code carry unique
// indexes; mongo.IsDuplicateKeyError on the returned error tells the caller
// to retry with a fresh code or reject the duplicate email.
func (r *WaitlistRepo) Create(ctx context.Context, user *models.WaitlistUser) error {
	user.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *WaitlistRepo) FindByEmail(ctx context.Context, email string) (*models.WaitlistUser, error) {
	var user models.WaitlistUser
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *WaitlistRepo) FindByReferralCode(ctx context.Context, code string) (*models.WaitlistUser, error) {
	var user models.WaitlistUser
	err := r.collection.FindOne(ctx, bson.M{"referral_code": code}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CreditReferral bumps the referrer's verified referral and boost counters.
func (r *WaitlistRepo) CreditReferral(ctx context.Context, referrerEmail string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"email": referrerEmail}, bson.M{
		"$inc": bson.M{"verified_referrals": 1, "boosts": 1},
	})
	return err
}

// CountVIPBefore counts VIP entrants who joined strictly before t.
func (r *WaitlistRepo) CountVIPBefore(ctx context.Context, t time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"is_vip":     true,
		"created_at": bson.M{"$lt": t},
	})
}

func (r *WaitlistRepo) CountVIP(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"is_vip": true})
}

// CountNonVIPBefore counts non-VIP entrants who joined strictly before t.
func (r *WaitlistRepo) CountNonVIPBefore(ctx context.Context, t time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"is_vip":     false,
		"created_at": bson.M{"$lt": t},
	})
}

func (r *WaitlistRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *WaitlistRepo) CountByGender(ctx context.Context, gender string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"gender": gender})
}

func (r *WaitlistRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

// TotalVerifiedReferrals sums verified_referrals across the whole waitlist.
func (r *WaitlistRepo) TotalVerifiedReferrals(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$verified_referrals"},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// EnsureIndexes creates necessary indexes for the waitlist collection
func (r *WaitlistRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "referral_code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "is_vip", Value: 1}, {Key: "created_at", Value: 1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
