package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"amora-backend/internal/posedetect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticVerifier is a deterministic test double for pose detection.
type staticVerifier struct {
	result posedetect.Result
}

func (s *staticVerifier) Verify(ctx context.Context, imageBase64, userID string) (posedetect.Result, error) {
	return s.result, nil
}

func TestPoseDetectionHandler_Verify(t *testing.T) {
	t.Parallel()

	verifier := &staticVerifier{result: posedetect.Result{
		Success:       true,
		Confidence:    0.97,
		DetectedPoses: []string{"standing", "face_visible", "full_body"},
		Message:       "Pose verified successfully!",
	}}
	handler := NewPoseDetectionHandler(verifier)

	body := `{"image_base64":"aGVsbG8=","user_id":"abc123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/pose-detection/verify", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Verify(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got posedetect.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, 0.97, got.Confidence)
	assert.Equal(t, []string{"standing", "face_visible", "full_body"}, got.DetectedPoses)
}

func TestPoseDetectionHandler_BadBody(t *testing.T) {
	t.Parallel()

	handler := NewPoseDetectionHandler(&staticVerifier{})

	req := httptest.NewRequest(http.MethodPost, "/api/pose-detection/verify", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.Verify(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStripeWebhook_EchoesEventType(t *testing.T) {
	t.Parallel()

	handler := &PaymentHandler{}

	body := `{"type":"invoice.paid","data":{"object":{}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.StripeWebhook(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, true, got["received"])
	assert.Equal(t, "invoice.paid", got["event_type"])
}

func TestStripeWebhook_UnknownEventType(t *testing.T) {
	t.Parallel()

	handler := &PaymentHandler{}

	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.StripeWebhook(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "unknown", got["event_type"])
}
