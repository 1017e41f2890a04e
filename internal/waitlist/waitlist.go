// Package waitlist holds the pre-launch queue rules: referral codes, VIP
// eligibility and the two-tier position ordering.
package waitlist

import (
	"math/rand"
	"strings"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	CodeLength   = 8
)

// NewReferralCode returns a random 8-character alphanumeric code.
// Uniqueness is enforced by the store's index, not here; callers retry on
// a duplicate-key conflict.
func NewReferralCode() string {
	b := make([]byte, CodeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}

// IsVIP reports whether a declared gender grants VIP tier.
func IsVIP(gender string) bool {
	return strings.EqualFold(gender, "female")
}

// InitialBoosts is the boost counter a fresh entrant starts with.
func InitialBoosts(isVIP bool) int {
	if isVIP {
		return 1
	}
	return 0
}

// Position computes the 1-indexed place in line. Every VIP ranks ahead of
// every non-VIP; within a tier, earlier joins rank first. vipBefore and
// nonVIPBefore count same-tier entrants with a strictly earlier join time,
// vipTotal counts all VIPs.
func Position(isVIP bool, vipBefore, vipTotal, nonVIPBefore int64) int64 {
	if isVIP {
		return vipBefore + 1
	}
	return vipTotal + nonVIPBefore + 1
}

// MaskEmail hides all but the first three characters of an address, for
// referral-code lookups by strangers.
func MaskEmail(email string) string {
	if len(email) <= 3 {
		return email + "***"
	}
	return email[:3] + "***"
}
