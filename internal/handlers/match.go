package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"amora-backend/internal/matching"
	"amora-backend/internal/models"
	"amora-backend/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const defaultPotentialLimit = 20

type MatchHandler struct {
	profileRepo     *repository.ProfileRepo
	interactionRepo *repository.InteractionRepo
	matchRepo       *repository.MatchRepo
}

func NewMatchHandler(
	profileRepo *repository.ProfileRepo,
	interactionRepo *repository.InteractionRepo,
	matchRepo *repository.MatchRepo,
) *MatchHandler {
	return &MatchHandler{
		profileRepo:     profileRepo,
		interactionRepo: interactionRepo,
		matchRepo:       matchRepo,
	}
}

type SwipeRequest struct {
	TargetUserID string `json:"target_user_id"`
	Action       string `json:"action"` // "like", "pass", "super_like"
}

type SwipeResponse struct {
	Action  string `json:"action"`
	Matched bool   `json:"matched"`
	MatchID string `json:"match_id,omitempty"`
}

type MatchSummary struct {
	MatchID   string          `json:"match_id"`
	MatchedAt time.Time       `json:"matched_at"`
	Profile   *models.Profile `json:"profile"`
}

// --- GET /api/matches/potential ---

func (h *MatchHandler) Potential(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	limit := defaultPotentialLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	myProfile, err := h.profileRepo.FindByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Error finding profile: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if myProfile == nil {
		writeError(w, http.StatusNotFound, "Please create your profile first")
		return
	}

	// Anyone the user already interacted with is out, as is the user.
	excluded, err := h.interactionRepo.TargetIDs(r.Context(), userID)
	if err != nil {
		log.Printf("Error loading interactions: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	excluded = append(excluded, userID)

	candidates, err := h.profileRepo.FindPotential(r.Context(), myProfile.Location.City, excluded)
	if err != nil {
		log.Printf("Error loading candidates: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, matching.Rank(myProfile, candidates, limit))
}

// --- POST /api/matches/swipe ---

func (h *MatchHandler) Swipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req SwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !models.IsSwipeAction(req.Action) {
		writeError(w, http.StatusBadRequest, "action must be like, pass or super_like")
		return
	}
	targetID, err := bson.ObjectIDFromHex(req.TargetUserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid target_user_id")
		return
	}
	if targetID == userID {
		writeError(w, http.StatusBadRequest, "cannot swipe on yourself")
		return
	}

	swipe := &models.Interaction{
		UserID:       userID,
		TargetUserID: targetID,
		Action:       req.Action,
	}
	if err := h.interactionRepo.Create(r.Context(), swipe); err != nil {
		log.Printf("Error recording swipe: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := SwipeResponse{Action: req.Action}

	if req.Action == models.ActionLike || req.Action == models.ActionSuperLike {
		mutual, err := h.interactionRepo.FindMutualLike(r.Context(), userID, targetID)
		if err != nil {
			log.Printf("Error checking mutual like: %v", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if mutual != nil {
			match, err := h.createMatch(r.Context(), userID, targetID)
			if err != nil {
				log.Printf("Error creating match: %v", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			resp.Matched = true
			resp.MatchID = match.ID.Hex()
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// createMatch inserts the match and the paired "match" interactions. When
// both users swipe at once, the loser of the pair_key insert race picks up
// the winner's record instead of creating a second one.
func (h *MatchHandler) createMatch(ctx context.Context, userID, targetID bson.ObjectID) (*models.Match, error) {
	match := &models.Match{
		User1ID: userID,
		User2ID: targetID,
	}
	if err := h.matchRepo.Create(ctx, match); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			return nil, err
		}
		existing, findErr := h.matchRepo.FindActiveByPair(ctx, userID, targetID)
		if findErr != nil {
			return nil, findErr
		}
		if existing == nil {
			return nil, err
		}
		return existing, nil
	}

	for _, pair := range [][2]bson.ObjectID{{userID, targetID}, {targetID, userID}} {
		interaction := &models.Interaction{
			UserID:       pair[0],
			TargetUserID: pair[1],
			Action:       models.ActionMatch,
		}
		if err := h.interactionRepo.Create(ctx, interaction); err != nil {
			log.Printf("Error recording match interaction: %v", err)
		}
	}
	return match, nil
}

// --- GET /api/matches/my-matches ---

func (h *MatchHandler) MyMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	matches, err := h.matchRepo.FindAllForUser(r.Context(), userID)
	if err != nil {
		log.Printf("Error loading matches: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// Enrich with the other participant's profile; matches whose profile is
	// gone are skipped.
	enriched := make([]MatchSummary, 0, len(matches))
	for _, match := range matches {
		otherProfile, err := h.profileRepo.FindByUserID(r.Context(), match.OtherUser(userID))
		if err != nil {
			log.Printf("Error loading matched profile: %v", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if otherProfile == nil {
			continue
		}
		enriched = append(enriched, MatchSummary{
			MatchID:   match.ID.Hex(),
			MatchedAt: match.MatchedAt,
			Profile:   otherProfile,
		})
	}

	writeJSON(w, http.StatusOK, enriched)
}
