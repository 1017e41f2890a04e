package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"amora-backend/internal/models"
	"amora-backend/internal/repository"
	"amora-backend/internal/waitlist"

	"github.com/go-chi/chi/v5"
	"github.com/resend/resend-go/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Attempts at generating a collision-free referral code before giving up.
const maxCodeAttempts = 5

type WaitlistHandler struct {
	waitlistRepo *repository.WaitlistRepo
}

func NewWaitlistHandler(waitlistRepo *repository.WaitlistRepo) *WaitlistHandler {
	return &WaitlistHandler{
		waitlistRepo: waitlistRepo,
	}
}

type WaitlistJoinRequest struct {
	Email      string `json:"email"`
	Gender     string `json:"gender,omitempty"`
	ReferredBy string `json:"referred_by,omitempty"`
}

type WaitlistUserStats struct {
	Email             string `json:"email"`
	ReferralCode      string `json:"referral_code"`
	Boosts            int    `json:"boosts"`
	VerifiedReferrals int    `json:"verified_referrals"`
	PositionInLine    int64  `json:"position_in_line"`
	IsVIP             bool   `json:"is_vip"`
}

type WaitlistOverview struct {
	TotalSignups   int64 `json:"total_signups"`
	FemaleSignups  int64 `json:"female_signups"`
	MaleSignups    int64 `json:"male_signups"`
	TotalReferrals int64 `json:"total_referrals"`
	ActiveUsers    int64 `json:"active_users"`
}

type VerifyReferralRequest struct {
	ReferralCode string `json:"referral_code"`
}

// --- POST /api/waitlist/join ---

func (h *WaitlistHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req WaitlistJoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	existing, err := h.waitlistRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Error checking waitlist email: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "Email already registered on waitlist")
		return
	}

	var referrer *models.WaitlistUser
	if req.ReferredBy != "" {
		referrer, err = h.waitlistRepo.FindByReferralCode(r.Context(), req.ReferredBy)
		if err != nil {
			log.Printf("Error resolving referral code: %v", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if referrer == nil {
			writeError(w, http.StatusBadRequest, "Invalid referral code")
			return
		}
	}

	isVIP := waitlist.IsVIP(req.Gender)
	entrant := &models.WaitlistUser{
		Email:      req.Email,
		ReferredBy: req.ReferredBy,
		Gender:     req.Gender,
		IsVIP:      isVIP,
		Boosts:     waitlist.InitialBoosts(isVIP),
		Status:     "pending",
		City:       defaultCity,
	}

	// Insert optimistically; the unique index on referral_code resolves
	// generator collisions, including concurrent ones.
	inserted := false
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		entrant.ReferralCode = waitlist.NewReferralCode()
		err = h.waitlistRepo.Create(r.Context(), entrant)
		if err == nil {
			inserted = true
			break
		}
		if !mongo.IsDuplicateKeyError(err) {
			log.Printf("Error inserting waitlist entry: %v", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		// The duplicate may also be a concurrent join with the same email.
		dup, dupErr := h.waitlistRepo.FindByEmail(r.Context(), req.Email)
		if dupErr == nil && dup != nil {
			writeError(w, http.StatusBadRequest, "Email already registered on waitlist")
			return
		}
	}
	if !inserted {
		log.Printf("Error: exhausted referral code attempts for %s", req.Email)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if referrer != nil {
		if err := h.waitlistRepo.CreditReferral(r.Context(), referrer.Email); err != nil {
			log.Printf("Error crediting referral: %v", err)
		}
	}

	position, err := h.positionFor(r.Context(), entrant)
	if err != nil {
		log.Printf("Error computing position: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	go sendWelcomeEmail(entrant.Email, entrant.ReferralCode, position)

	writeJSON(w, http.StatusCreated, WaitlistUserStats{
		Email:             entrant.Email,
		ReferralCode:      entrant.ReferralCode,
		Boosts:            entrant.Boosts,
		VerifiedReferrals: entrant.VerifiedReferrals,
		PositionInLine:    position,
		IsVIP:             entrant.IsVIP,
	})
}

// positionFor re-derives the two-tier place in line for any stored entrant.
func (h *WaitlistHandler) positionFor(ctx context.Context, entrant *models.WaitlistUser) (int64, error) {
	if entrant.IsVIP {
		vipBefore, err := h.waitlistRepo.CountVIPBefore(ctx, entrant.CreatedAt)
		if err != nil {
			return 0, err
		}
		return waitlist.Position(true, vipBefore, 0, 0), nil
	}

	vipTotal, err := h.waitlistRepo.CountVIP(ctx)
	if err != nil {
		return 0, err
	}
	nonVIPBefore, err := h.waitlistRepo.CountNonVIPBefore(ctx, entrant.CreatedAt)
	if err != nil {
		return 0, err
	}
	return waitlist.Position(false, 0, vipTotal, nonVIPBefore), nil
}

// --- GET /api/waitlist/stats/{email} ---

func (h *WaitlistHandler) StatsByEmail(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(chi.URLParam(r, "email"))

	entrant, err := h.waitlistRepo.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("Error finding waitlist entry: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if entrant == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	position, err := h.positionFor(r.Context(), entrant)
	if err != nil {
		log.Printf("Error computing position: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, WaitlistUserStats{
		Email:             entrant.Email,
		ReferralCode:      entrant.ReferralCode,
		Boosts:            entrant.Boosts,
		VerifiedReferrals: entrant.VerifiedReferrals,
		PositionInLine:    position,
		IsVIP:             entrant.IsVIP,
	})
}

// --- GET /api/waitlist/stats ---

func (h *WaitlistHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := h.waitlistRepo.Count(ctx)
	if err != nil {
		log.Printf("Error counting waitlist: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	female, err := h.waitlistRepo.CountByGender(ctx, "female")
	if err != nil {
		log.Printf("Error counting female signups: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	male, err := h.waitlistRepo.CountByGender(ctx, "male")
	if err != nil {
		log.Printf("Error counting male signups: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	totalReferrals, err := h.waitlistRepo.TotalVerifiedReferrals(ctx)
	if err != nil {
		log.Printf("Error summing referrals: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	active, err := h.waitlistRepo.CountByStatus(ctx, "active")
	if err != nil {
		log.Printf("Error counting active users: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, WaitlistOverview{
		TotalSignups:   total,
		FemaleSignups:  female,
		MaleSignups:    male,
		TotalReferrals: totalReferrals,
		ActiveUsers:    active,
	})
}

// --- POST /api/waitlist/verify-referral ---

func (h *WaitlistHandler) VerifyReferral(w http.ResponseWriter, r *http.Request) {
	var req VerifyReferralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	referrer, err := h.waitlistRepo.FindByReferralCode(r.Context(), req.ReferralCode)
	if err != nil {
		log.Printf("Error finding referral code: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if referrer == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"valid": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"valid":          true,
		"referrer_email": waitlist.MaskEmail(referrer.Email),
		"is_vip":         referrer.IsVIP,
	})
}

// --- Helpers ---

func sendWelcomeEmail(to, referralCode string, position int64) {
	apiKey := os.Getenv("RESEND_API_KEY")
	fromEmail := os.Getenv("FROM_EMAIL")

	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY not set, skipping email send")
		log.Printf("📧 [Dev Mode] Waitlist welcome for %s: code %s, position %d", to, referralCode, position)
		return
	}

	client := resend.NewClient(apiKey)

	params := &resend.SendEmailRequest{
		From:    fromEmail,
		To:      []string{to},
		Subject: "You're on the Amora waitlist!",
		Html: fmt.Sprintf(`
			<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
				<h2 style="color: #333;">You're in! 💜</h2>
				<p>You're <strong>#%d</strong> in line for Amora.</p>
				<p>Share your referral code to move up — every friend who joins gives you a boost:</p>
				<p style="font-size: 24px; font-weight: 700; letter-spacing: 2px; color: #6366f1;">%s</p>
				<p style="color: #aaa; font-size: 12px;">
					If you didn't sign up, you can safely ignore this email.
				</p>
			</div>
		`, position, referralCode),
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		log.Printf("Error sending welcome email: %v", err)
		return
	}
	log.Printf("📧 Welcome email sent to %s (ID: %s)", to, sent.Id)
}
