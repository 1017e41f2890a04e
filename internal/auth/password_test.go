package auth

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, VerifyPassword("s3cret-password", hash))
	assert.False(t, VerifyPassword("wrong-password", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestVerifyPassword_BadHash(t *testing.T) {
	t.Parallel()

	assert.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
}

func TestNormalizePassword_LongInput(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 100)
	normalized := normalizePassword(long)
	assert.Equal(t, strings.Repeat("a", 72), normalized)

	// Hashing an over-long password must not error, and the trimmed form
	// verifies against it.
	hash, err := HashPassword(long)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(long, hash))
	assert.True(t, VerifyPassword(long[:72], hash))
}

func TestNormalizePassword_MultibyteBoundary(t *testing.T) {
	t.Parallel()

	// 71 ASCII bytes followed by a 3-byte rune: the cut at 72 lands inside
	// the rune and the partial sequence must be dropped, not kept.
	pwd := strings.Repeat("a", 71) + "€"
	normalized := normalizePassword(pwd)
	assert.True(t, utf8.ValidString(normalized))
	assert.LessOrEqual(t, len(normalized), 72)

	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(pwd, hash))
}

func TestNormalizePassword_ShortUnchanged(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", normalizePassword("hello"))
	assert.Equal(t, "héllo€", normalizePassword("héllo€"))
}
