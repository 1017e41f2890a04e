package posedetect

import "context"

// Result is the outcome of a pose-verification check on an uploaded photo.
type Result struct {
	Success       bool     `json:"success"`
	Confidence    float64  `json:"confidence"`
	DetectedPoses []string `json:"detected_poses"`
	Message       string   `json:"message"`
}

// Verifier defines the interface for photo pose verification.
// This abstraction allows swapping the mock with a real ML Kit integration
// without refactoring.
type Verifier interface {
	Verify(ctx context.Context, imageBase64, userID string) (Result, error)
}
