package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"amora-backend/internal/models"
	"amora-backend/internal/payments"
	"amora-backend/internal/posedetect"
	"amora-backend/internal/repository"
)

// Handlers for the mocked external collaborators: pose detection and the
// Stripe payment flows. The capabilities behind them are injected so tests
// can swap in deterministic doubles.

type PoseDetectionHandler struct {
	verifier posedetect.Verifier
}

func NewPoseDetectionHandler(verifier posedetect.Verifier) *PoseDetectionHandler {
	return &PoseDetectionHandler{verifier: verifier}
}

type VerifyPoseRequest struct {
	ImageBase64 string `json:"image_base64"`
	UserID      string `json:"user_id"`
}

// --- POST /api/pose-detection/verify ---

func (h *PoseDetectionHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyPoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.verifier.Verify(r.Context(), req.ImageBase64, req.UserID)
	if err != nil {
		log.Printf("Error verifying pose: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type PaymentHandler struct {
	provider    payments.Provider
	paymentRepo *repository.PaymentRepo
}

func NewPaymentHandler(provider payments.Provider, paymentRepo *repository.PaymentRepo) *PaymentHandler {
	return &PaymentHandler{
		provider:    provider,
		paymentRepo: paymentRepo,
	}
}

type CreateSubscriptionRequest struct {
	UserID   string `json:"user_id"`
	PlanType string `json:"plan_type"`
}

type PurchasePowerUpRequest struct {
	UserID      string `json:"user_id"`
	PowerUpType string `json:"powerup_type"`
}

// --- POST /api/subscription/create ---

func (h *PaymentHandler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	var req CreateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.PlanType == "" {
		req.PlanType = "premium"
	}

	result, err := h.provider.CreateSubscription(r.Context(), req.UserID, req.PlanType)
	if err != nil {
		log.Printf("Error creating subscription: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	sub := &models.Subscription{
		UserID:               req.UserID,
		PlanType:             req.PlanType,
		Price:                result.Price,
		Status:               "active",
		StripeSubscriptionID: result.SubscriptionID,
	}
	if err := h.paymentRepo.CreateSubscription(r.Context(), sub); err != nil {
		log.Printf("Error storing subscription: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"subscription_id": result.SubscriptionID,
		"message":         "Subscription created successfully (MOCKED)",
	})
}

// --- POST /api/powerup/purchase ---

func (h *PaymentHandler) PurchasePowerUp(w http.ResponseWriter, r *http.Request) {
	var req PurchasePowerUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.PowerUpType == "" {
		writeError(w, http.StatusBadRequest, "user_id and powerup_type are required")
		return
	}

	result, err := h.provider.PurchasePowerUp(r.Context(), req.UserID, req.PowerUpType)
	if err != nil {
		log.Printf("Error purchasing power-up: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	purchase := &models.PowerUpPurchase{
		UserID:          req.UserID,
		PowerUpType:     req.PowerUpType,
		Price:           result.Price,
		StripePaymentID: result.PaymentID,
	}
	if err := h.paymentRepo.CreatePowerUpPurchase(r.Context(), purchase); err != nil {
		log.Printf("Error storing purchase: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"payment_id": result.PaymentID,
		"message":    "Power-up '" + req.PowerUpType + "' purchased successfully (MOCKED)",
	})
}

// --- POST /api/stripe/webhook ---

func (h *PaymentHandler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eventType, _ := payload["type"].(string)
	if eventType == "" {
		eventType = "unknown"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"received":   true,
		"event_type": eventType,
		"message":    "Webhook processed (MOCKED)",
	})
}
