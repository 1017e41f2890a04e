package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"amora-backend/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func protectedHandler(t *testing.T, gotUserID, gotEmail *string) http.Handler {
	t.Helper()
	return JWTAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotUserID = GetUserID(r.Context())
		*gotEmail = GetUserEmail(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
}

func TestJWTAuth_ValidToken(t *testing.T) {
	t.Parallel()

	token, err := auth.CreateAccessToken(testSecret, "abc123", "alice@example.com")
	require.NoError(t, err)

	var gotUserID, gotEmail string
	handler := protectedHandler(t, &gotUserID, &gotEmail)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123", gotUserID)
	assert.Equal(t, "alice@example.com", gotEmail)
}

func TestJWTAuth_Rejections(t *testing.T) {
	t.Parallel()

	wrongSecretToken, err := auth.CreateAccessToken("other-secret", "abc123", "a@b.c")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + wrongSecretToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID, gotEmail string
			handler := protectedHandler(t, &gotUserID, &gotEmail)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, gotUserID)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetUserID(req.Context()))
	assert.Empty(t, GetUserEmail(req.Context()))
}
