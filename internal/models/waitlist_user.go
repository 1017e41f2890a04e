package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type WaitlistUser struct {
	ID                bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email             string        `bson:"email" json:"email"`
	ReferralCode      string        `bson:"referral_code" json:"referral_code"`
	ReferredBy        string        `bson:"referred_by,omitempty" json:"referred_by,omitempty"`
	Boosts            int           `bson:"boosts" json:"boosts"`
	Gender            string        `bson:"gender,omitempty" json:"gender,omitempty"`
	IsVIP             bool          `bson:"is_vip" json:"is_vip"`
	Status            string        `bson:"status" json:"status"` // "pending" or "active"
	City              string        `bson:"city" json:"city"`
	VerifiedReferrals int           `bson:"verified_referrals" json:"verified_referrals"`
	CreatedAt         time.Time     `bson:"created_at" json:"created_at"`
}
