package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes, and some implementations reject
// longer inputs outright. Trim on a byte boundary and drop any partial
// UTF-8 sequence left at the cut.
func normalizePassword(password string) string {
	b := []byte(password)
	if len(b) > 72 {
		b = b[:72]
	}
	return strings.ToValidUTF8(string(b), "")
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(normalizePassword(password)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(normalizePassword(password))) == nil
}
