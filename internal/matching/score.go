// Package matching scores and ranks candidate profiles for the swipe deck.
package matching

import (
	"math"
	"sort"

	"amora-backend/internal/models"
)

const earthRadiusKm = 6371

// Haversine returns the great-circle distance in kilometers between two
// (lat, lng) coordinate pairs.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

// Score rates a candidate for the given user. Base 100, up to 30 for
// proximity, up to 40 for interest overlap (Jaccard), up to 30 for profile
// completeness. Capped at 200.
func Score(user, target *models.Profile, distanceKm float64) int {
	score := 100

	switch {
	case distanceKm <= 2:
		score += 30
	case distanceKm <= 5:
		score += 20
	case distanceKm <= 10:
		score += 10
	}

	score += interestBonus(user.Interests, target.Interests)

	if target.Bio != "" {
		score += 10
	}
	if len(target.Photos) >= 3 {
		score += 10
	}
	if target.IsVerified {
		score += 10
	}

	if score > 200 {
		score = 200
	}
	return score
}

// interestBonus is floor(40 * |intersection| / |union|), or 0 when either
// set is empty.
func interestBonus(userInterests, targetInterests []string) int {
	if len(userInterests) == 0 || len(targetInterests) == 0 {
		return 0
	}

	set := make(map[string]bool, len(userInterests))
	for _, in := range userInterests {
		set[in] = true
	}

	union := len(set)
	overlap := 0
	seen := make(map[string]bool, len(targetInterests))
	for _, in := range targetInterests {
		if seen[in] {
			continue
		}
		seen[in] = true
		if set[in] {
			overlap++
		} else {
			union++
		}
	}

	return overlap * 40 / union
}

// RankedProfile is one entry of the potential-matches response.
type RankedProfile struct {
	Profile    *models.Profile `json:"profile"`
	MatchScore int             `json:"match_score"`
	DistanceKm float64         `json:"distance_km"`
}

// Rank scores every candidate against the user's profile and returns the
// top entries by descending score, at most limit. Candidates with equal
// scores keep their input order.
func Rank(user *models.Profile, candidates []*models.Profile, limit int) []RankedProfile {
	ranked := make([]RankedProfile, 0, len(candidates))
	for _, candidate := range candidates {
		distance := Haversine(
			user.Location.Lat, user.Location.Lng,
			candidate.Location.Lat, candidate.Location.Lng,
		)
		ranked = append(ranked, RankedProfile{
			Profile:    candidate,
			MatchScore: Score(user, candidate, distance),
			DistanceKm: math.Round(distance*10) / 10,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
