package handlers

import (
	"log"
	"math"
	"net/http"
	"time"

	"amora-backend/internal/models"
	"amora-backend/internal/repository"
)

// A user's engagement goal: interactions needed for 100% progress.
const interactionGoal = 20

type AnalyticsHandler struct {
	userRepo        *repository.UserRepo
	profileRepo     *repository.ProfileRepo
	interactionRepo *repository.InteractionRepo
	matchRepo       *repository.MatchRepo
	messageRepo     *repository.MessageRepo
}

func NewAnalyticsHandler(
	userRepo *repository.UserRepo,
	profileRepo *repository.ProfileRepo,
	interactionRepo *repository.InteractionRepo,
	matchRepo *repository.MatchRepo,
	messageRepo *repository.MessageRepo,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		interactionRepo: interactionRepo,
		matchRepo:       matchRepo,
		messageRepo:     messageRepo,
	}
}

// percentRate returns n/d*100 rounded to one decimal, or 0 when d is 0.
func percentRate(n, d int64) float64 {
	if d == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(d)*1000) / 10
}

// perUnit returns n/d rounded to one decimal, or 0 when d is 0.
func perUnit(n, d int64) float64 {
	if d == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(d)*10) / 10
}

// goalProgress returns total/goal as a percentage, capped at 100.
func goalProgress(total, goal int64) float64 {
	progress := float64(total) / float64(goal) * 100
	return math.Min(progress, 100)
}

// --- GET /api/analytics/my-stats ---

func (h *AnalyticsHandler) MyStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	views, err := h.interactionRepo.CountByUser(ctx, userID, models.ActionView)
	if err != nil {
		log.Printf("Error counting views: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	likes, err := h.interactionRepo.CountByUser(ctx, userID, models.ActionLike, models.ActionSuperLike)
	if err != nil {
		log.Printf("Error counting likes: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	passes, err := h.interactionRepo.CountByUser(ctx, userID, models.ActionPass)
	if err != nil {
		log.Printf("Error counting passes: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	matches, err := h.interactionRepo.CountByUser(ctx, userID, models.ActionMatch)
	if err != nil {
		log.Printf("Error counting matches: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	profileViews, err := h.interactionRepo.CountByTarget(ctx, userID, models.ActionView)
	if err != nil {
		log.Printf("Error counting profile views: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	likesReceived, err := h.interactionRepo.CountByTarget(ctx, userID, models.ActionLike, models.ActionSuperLike)
	if err != nil {
		log.Printf("Error counting likes received: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	totalInteractions := views + likes + passes

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_interactions": totalInteractions,
		"goal_progress":      goalProgress(totalInteractions, interactionGoal),
		"views":              views,
		"likes_sent":         likes,
		"passes":             passes,
		"matches":            matches,
		"profile_views":      profileViews,
		"likes_received":     likesReceived,
		"match_rate":         percentRate(matches, likes),
	})
}

// --- GET /api/analytics/admin ---

func (h *AnalyticsHandler) Admin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalUsers, err := h.userRepo.Count(ctx)
	if err != nil {
		log.Printf("Error counting users: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	totalProfiles, err := h.profileRepo.Count(ctx)
	if err != nil {
		log.Printf("Error counting profiles: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	totalMatches, err := h.matchRepo.Count(ctx)
	if err != nil {
		log.Printf("Error counting matches: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	totalMessages, err := h.messageRepo.Count(ctx)
	if err != nil {
		log.Printf("Error counting messages: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	activeUsers, err := h.interactionRepo.DistinctActiveUsers(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		log.Printf("Error counting active users: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_users":             totalUsers,
		"total_profiles":          totalProfiles,
		"profile_completion_rate": percentRate(totalProfiles, totalUsers),
		"total_matches":           totalMatches,
		"total_messages":          totalMessages,
		"active_users_7d":         len(activeUsers),
		"messages_per_match":      perUnit(totalMessages, totalMatches),
	})
}
