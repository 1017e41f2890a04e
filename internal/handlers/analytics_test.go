package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n, d int64
		want float64
	}{
		{"zero denominator", 5, 0, 0},
		{"zero numerator", 0, 10, 0},
		{"exact", 1, 2, 50},
		{"rounds to one decimal", 1, 3, 33.3},
		{"rounds up", 2, 3, 66.7},
		{"over 100 allowed", 3, 2, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, percentRate(tt.n, tt.d))
		})
	}
}

func TestPerUnit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, perUnit(7, 0))
	assert.Equal(t, 3.5, perUnit(7, 2))
	assert.Equal(t, 2.3, perUnit(7, 3))
}

func TestGoalProgress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, goalProgress(0, interactionGoal))
	assert.Equal(t, 50.0, goalProgress(10, interactionGoal))
	assert.Equal(t, 100.0, goalProgress(20, interactionGoal))
	// Progress is capped once the goal is passed.
	assert.Equal(t, 100.0, goalProgress(55, interactionGoal))
}
