package posedetect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockVerifier_ResultShape(t *testing.T) {
	t.Parallel()

	m := NewMockVerifier()
	for i := 0; i < 50; i++ {
		result, err := m.Verify(context.Background(), "aGVsbG8=", "user-1")
		require.NoError(t, err)

		assert.GreaterOrEqual(t, result.Confidence, 0.85)
		assert.LessOrEqual(t, result.Confidence, 0.99)
		assert.NotEmpty(t, result.Message)
		if result.Success {
			assert.Equal(t, []string{"standing", "face_visible", "full_body"}, result.DetectedPoses)
		} else {
			assert.Empty(t, result.DetectedPoses)
		}
	}
}
