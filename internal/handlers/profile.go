package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"amora-backend/internal/models"
	"amora-backend/internal/posedetect"
	"amora-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Launch city: every profile is pinned to NYC with a default downtown
// coordinate until real geolocation ships.
const (
	defaultCity = "NYC"
	defaultLat  = 40.7128
	defaultLng  = -74.0060
)

type ProfileHandler struct {
	profileRepo     *repository.ProfileRepo
	userRepo        *repository.UserRepo
	interactionRepo *repository.InteractionRepo
	verifier        posedetect.Verifier
}

func NewProfileHandler(
	profileRepo *repository.ProfileRepo,
	userRepo *repository.UserRepo,
	interactionRepo *repository.InteractionRepo,
	verifier posedetect.Verifier,
) *ProfileHandler {
	return &ProfileHandler{
		profileRepo:     profileRepo,
		userRepo:        userRepo,
		interactionRepo: interactionRepo,
		verifier:        verifier,
	}
}

type CreateProfileRequest struct {
	Bio          string   `json:"bio"`
	Age          int      `json:"age"`
	Interests    []string `json:"interests"`
	LookingFor   string   `json:"looking_for"`
	Neighborhood string   `json:"neighborhood"`
}

type UpdateProfileRequest struct {
	Bio          *string   `json:"bio,omitempty"`
	Interests    *[]string `json:"interests,omitempty"`
	LookingFor   *string   `json:"looking_for,omitempty"`
	Neighborhood *string   `json:"neighborhood,omitempty"`
}

type UploadPhotoRequest struct {
	PhotoBase64 string `json:"photo_base64"`
}

// --- POST /api/profile/create ---

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	existing, err := h.profileRepo.FindByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Error checking profile: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "Profile already exists")
		return
	}

	if req.LookingFor == "" {
		req.LookingFor = "relationship"
	}
	if req.Neighborhood == "" {
		req.Neighborhood = "Downtown"
	}
	if req.Interests == nil {
		req.Interests = []string{}
	}

	profile := &models.Profile{
		UserID:    userID,
		Bio:       req.Bio,
		Age:       req.Age,
		Interests: req.Interests,
		Photos:    []string{},
		Location: models.Location{
			City:         defaultCity,
			Neighborhood: req.Neighborhood,
			Lat:          defaultLat,
			Lng:          defaultLng,
		},
		LookingFor:         req.LookingFor,
		VerificationPhotos: []string{},
	}
	if err := h.profileRepo.Create(r.Context(), profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			writeError(w, http.StatusBadRequest, "Profile already exists")
			return
		}
		log.Printf("Error creating profile: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.userRepo.SetHasProfile(r.Context(), userID, true); err != nil {
		log.Printf("Error setting has_profile: %v", err)
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Profile created successfully",
		"profile_id": profile.ID.Hex(),
	})
}

// --- GET /api/profile/me ---

func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	profile, err := h.profileRepo.FindByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Error finding profile: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "Profile not found")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// --- PUT /api/profile/update ---

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	set := bson.M{}
	if req.Bio != nil {
		set["bio"] = *req.Bio
	}
	if req.Interests != nil {
		set["interests"] = *req.Interests
	}
	if req.LookingFor != nil {
		set["looking_for"] = *req.LookingFor
	}
	if req.Neighborhood != nil {
		set["location.neighborhood"] = *req.Neighborhood
	}
	if len(set) == 0 {
		writeError(w, http.StatusBadRequest, "No data to update")
		return
	}

	updated, err := h.profileRepo.Update(r.Context(), userID, set)
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "Profile not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Profile updated successfully"})
}

// --- POST /api/profile/upload-photo ---

func (h *ProfileHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req UploadPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PhotoBase64 == "" {
		writeError(w, http.StatusBadRequest, "photo_base64 is required")
		return
	}

	profile, err := h.profileRepo.FindByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Error finding profile: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "Profile not found")
		return
	}

	verification, err := h.verifier.Verify(r.Context(), req.PhotoBase64, userID.Hex())
	if err != nil {
		log.Printf("Error verifying pose: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !verification.Success {
		writeError(w, http.StatusBadRequest, verification.Message)
		return
	}

	if err := h.profileRepo.PushPhoto(r.Context(), userID, req.PhotoBase64); err != nil {
		log.Printf("Error adding photo: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Photo uploaded successfully",
		"verification": verification,
	})
}

// --- GET /api/profile/{user_id} ---

func (h *ProfileHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	targetID, err := bson.ObjectIDFromHex(chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	profile, err := h.profileRepo.FindByUserID(r.Context(), targetID)
	if err != nil {
		log.Printf("Error finding profile: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "Profile not found")
		return
	}

	// Record the view so this profile leaves the viewer's swipe deck.
	view := &models.Interaction{
		UserID:       viewerID,
		TargetUserID: targetID,
		Action:       models.ActionView,
	}
	if err := h.interactionRepo.Create(r.Context(), view); err != nil {
		log.Printf("Error recording view: %v", err)
	}

	writeJSON(w, http.StatusOK, profile)
}
