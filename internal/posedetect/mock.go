package posedetect

import (
	"context"
	"math"
	"math/rand"
)

// MockVerifier implements the Verifier interface with randomized outcomes:
// ~90% of photos pass, with a confidence in [0.85, 0.99]. Replace with a
// real pose-detection client for production use.
type MockVerifier struct{}

func NewMockVerifier() *MockVerifier {
	return &MockVerifier{}
}

func (m *MockVerifier) Verify(ctx context.Context, imageBase64, userID string) (Result, error) {
	confidence := 0.85 + rand.Float64()*0.14
	success := rand.Float64() < 0.9

	result := Result{
		Success:    success,
		Confidence: math.Round(confidence*100) / 100,
	}
	if success {
		result.DetectedPoses = []string{"standing", "face_visible", "full_body"}
		result.Message = "Pose verified successfully!"
	} else {
		result.DetectedPoses = []string{}
		result.Message = "Please retake photo with full body visible"
	}
	return result, nil
}
