package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Swipe actions recorded in the interactions log.
const (
	ActionView      = "view"
	ActionLike      = "like"
	ActionPass      = "pass"
	ActionSuperLike = "super_like"
	ActionMatch     = "match"
)

// Interaction is a directional record: user acted on target. The log is
// append-only; nothing revises or removes a prior entry.
type Interaction struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       bson.ObjectID `bson:"user_id" json:"user_id"`
	TargetUserID bson.ObjectID `bson:"target_user_id" json:"target_user_id"`
	Action       string        `bson:"action" json:"action"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
}

// IsSwipeAction reports whether action is a valid swipe input.
func IsSwipeAction(action string) bool {
	switch action {
	case ActionLike, ActionPass, ActionSuperLike:
		return true
	}
	return false
}
