package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Match struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	User1ID       bson.ObjectID `bson:"user1_id" json:"user1_id"`
	User2ID       bson.ObjectID `bson:"user2_id" json:"user2_id"`
	PairKey       string        `bson:"pair_key" json:"-"`
	MatchedAt     time.Time     `bson:"matched_at" json:"matched_at"`
	LastMessageAt *time.Time    `bson:"last_message_at" json:"last_message_at,omitempty"`
	IsActive      bool          `bson:"is_active" json:"is_active"`
}

// PairKey builds the canonical key for an unordered user pair. A unique
// index on this key guarantees at most one match per pair, whichever of
// the two concurrent mutual swipes wins the insert.
func PairKey(a, b bson.ObjectID) string {
	ah, bh := a.Hex(), b.Hex()
	if ah > bh {
		ah, bh = bh, ah
	}
	return ah + ":" + bh
}

// OtherUser returns the participant that is not userID.
func (m *Match) OtherUser(userID bson.ObjectID) bson.ObjectID {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}

// HasParticipant reports whether userID is one of the match's pair.
func (m *Match) HasParticipant(userID bson.ObjectID) bool {
	return m.User1ID == userID || m.User2ID == userID
}
