package matching

import (
	"testing"

	"amora-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileAt(lat, lng float64) *models.Profile {
	return &models.Profile{Location: models.Location{City: "NYC", Lat: lat, Lng: lng}}
}

func TestHaversine_ZeroForIdenticalPoints(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Haversine(40.7128, -74.0060, 40.7128, -74.0060))
	assert.Equal(t, 0.0, Haversine(0, 0, 0, 0))
}

func TestHaversine_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][4]float64{
		{40.7128, -74.0060, 40.7580, -73.9855},
		{1.3521, 103.8198, -33.8688, 151.2093},
		{89.9, 0, -89.9, 180},
	}
	for _, p := range pairs {
		assert.InDelta(t, Haversine(p[0], p[1], p[2], p[3]), Haversine(p[2], p[3], p[0], p[1]), 1e-9)
	}
}

func TestHaversine_KnownDistance(t *testing.T) {
	t.Parallel()

	// Lower Manhattan to Times Square is roughly 5.3 km.
	d := Haversine(40.7128, -74.0060, 40.7580, -73.9855)
	assert.InDelta(t, 5.3, d, 0.3)
}

func TestScore_Bounds(t *testing.T) {
	t.Parallel()

	empty := &models.Profile{}
	assert.Equal(t, 100, Score(empty, empty, 1000))

	// Everything maxed: 100 + 30 + 40 + 30 caps at 200.
	full := &models.Profile{
		Bio:        "hello",
		Interests:  []string{"hiking", "music"},
		Photos:     []string{"a", "b", "c"},
		IsVerified: true,
	}
	assert.Equal(t, 200, Score(full, full, 0))
}

func TestScore_DistanceTiers(t *testing.T) {
	t.Parallel()

	empty := &models.Profile{}
	tests := []struct {
		name     string
		distance float64
		want     int
	}{
		{"within 2km", 1.5, 130},
		{"exactly 2km", 2, 130},
		{"within 5km", 4.9, 120},
		{"within 10km", 9.9, 110},
		{"beyond 10km", 10.1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(empty, empty, tt.distance))
		})
	}
}

func TestScore_InterestBonus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		user   []string
		target []string
		bonus  int
	}{
		{"both empty", nil, nil, 0},
		{"user empty", nil, []string{"music"}, 0},
		{"target empty", []string{"music"}, nil, 0},
		{"identical sets", []string{"hiking", "music"}, []string{"hiking", "music"}, 40},
		{"one of three shared", []string{"hiking", "music"}, []string{"music", "art"}, 13},
		{"disjoint sets", []string{"hiking"}, []string{"art"}, 0},
		{"duplicates ignored", []string{"music", "music"}, []string{"music", "music"}, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &models.Profile{Interests: tt.user}
			target := &models.Profile{Interests: tt.target}
			// Far away so only the interest bonus lifts the base score.
			assert.Equal(t, 100+tt.bonus, Score(user, target, 50))
		})
	}
}

func TestScore_CompletenessBonus(t *testing.T) {
	t.Parallel()

	user := &models.Profile{}
	target := &models.Profile{
		Bio:        "about me",
		Photos:     []string{"1", "2", "3"},
		IsVerified: true,
	}
	assert.Equal(t, 130, Score(user, target, 50))

	// Two photos is not enough for the photo bonus.
	target.Photos = target.Photos[:2]
	assert.Equal(t, 120, Score(user, target, 50))
}

func TestRank_OrdersByScoreDescending(t *testing.T) {
	t.Parallel()

	me := &models.Profile{
		Interests: []string{"hiking", "music"},
		Location:  models.Location{City: "NYC", Lat: 40.7128, Lng: -74.0060},
	}
	far := profileAt(41.5, -75.0)
	near := profileAt(40.7128, -74.0060)
	near.Bio = "close and complete"
	near.IsVerified = true

	ranked := Rank(me, []*models.Profile{far, near}, 10)
	require.Len(t, ranked, 2)
	assert.Same(t, near, ranked[0].Profile)
	assert.Same(t, far, ranked[1].Profile)
	assert.Greater(t, ranked[0].MatchScore, ranked[1].MatchScore)
}

func TestRank_RespectsLimit(t *testing.T) {
	t.Parallel()

	me := profileAt(40.7128, -74.0060)
	candidates := make([]*models.Profile, 5)
	for i := range candidates {
		candidates[i] = profileAt(40.7128, -74.0060)
	}

	assert.Len(t, Rank(me, candidates, 3), 3)
	assert.Len(t, Rank(me, candidates, 10), 5)
	assert.Empty(t, Rank(me, nil, 3))
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	me := profileAt(40.7128, -74.0060)
	first := profileAt(40.7128, -74.0060)
	second := profileAt(40.7128, -74.0060)
	third := profileAt(40.7128, -74.0060)

	ranked := Rank(me, []*models.Profile{first, second, third}, 10)
	require.Len(t, ranked, 3)
	assert.Same(t, first, ranked[0].Profile)
	assert.Same(t, second, ranked[1].Profile)
	assert.Same(t, third, ranked[2].Profile)
}

func TestRank_ScoreAlwaysInRange(t *testing.T) {
	t.Parallel()

	me := &models.Profile{
		Interests: []string{"a", "b", "c"},
		Location:  models.Location{City: "NYC", Lat: 40.7128, Lng: -74.0060},
	}
	candidates := []*models.Profile{
		profileAt(40.7128, -74.0060),
		profileAt(0, 0),
		{Interests: []string{"a", "b", "c"}, Bio: "x", IsVerified: true,
			Photos:   []string{"1", "2", "3", "4"},
			Location: models.Location{City: "NYC", Lat: 40.7128, Lng: -74.0060}},
	}

	for _, entry := range Rank(me, candidates, 10) {
		assert.GreaterOrEqual(t, entry.MatchScore, 100)
		assert.LessOrEqual(t, entry.MatchScore, 200)
	}
}
