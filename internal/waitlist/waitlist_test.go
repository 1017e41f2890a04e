package waitlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReferralCode_LengthAndCharset(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		code := NewReferralCode()
		assert.Len(t, code, CodeLength)
		for _, c := range code {
			assert.Contains(t, codeAlphabet, string(c))
		}
	}
}

func TestNewReferralCode_NotConstant(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[NewReferralCode()] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestIsVIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		gender string
		want   bool
	}{
		{"female", true},
		{"Female", true},
		{"FEMALE", true},
		{"male", false},
		{"other", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsVIP(tt.gender), "gender %q", tt.gender)
	}
}

func TestInitialBoosts(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, InitialBoosts(true))
	assert.Equal(t, 0, InitialBoosts(false))
}

func TestPosition_TwoTierOrdering(t *testing.T) {
	t.Parallel()

	// Entrant A joins first, non-VIP: no VIPs yet, nobody ahead.
	assert.Equal(t, int64(1), Position(false, 0, 0, 0))

	// Entrant B joins second, VIP: no VIPs joined earlier, so B is first
	// despite A's head start.
	assert.Equal(t, int64(1), Position(true, 0, 0, 0))

	// A's position recomputed after B joined: one VIP total now ranks ahead.
	assert.Equal(t, int64(2), Position(false, 0, 1, 0))
}

func TestPosition_StrictlyIncreasingWithinTier(t *testing.T) {
	t.Parallel()

	// Successive VIP joiners each see one more VIP ahead of them.
	prev := int64(0)
	for vipBefore := int64(0); vipBefore < 5; vipBefore++ {
		pos := Position(true, vipBefore, 0, 0)
		assert.Greater(t, pos, prev)
		prev = pos
	}

	// Same for non-VIPs behind a fixed block of VIPs.
	prev = 0
	for nonVIPBefore := int64(0); nonVIPBefore < 5; nonVIPBefore++ {
		pos := Position(false, 0, 3, nonVIPBefore)
		assert.Greater(t, pos, prev)
		prev = pos
	}
}

func TestPosition_EveryVIPAheadOfEveryNonVIP(t *testing.T) {
	t.Parallel()

	const vipTotal = 4
	lastVIP := Position(true, vipTotal-1, 0, 0)
	firstNonVIP := Position(false, 0, vipTotal, 0)
	assert.Less(t, lastVIP, firstNonVIP)
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ali***", MaskEmail("alice@example.com"))
	assert.Equal(t, "ab***", MaskEmail("ab"))
	assert.Equal(t, "***", MaskEmail(""))
	assert.False(t, strings.Contains(MaskEmail("alice@example.com"), "@"))
}
