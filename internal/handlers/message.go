package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"amora-backend/internal/models"
	"amora-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type MessageHandler struct {
	matchRepo   *repository.MatchRepo
	messageRepo *repository.MessageRepo
}

func NewMessageHandler(matchRepo *repository.MatchRepo, messageRepo *repository.MessageRepo) *MessageHandler {
	return &MessageHandler{
		matchRepo:   matchRepo,
		messageRepo: messageRepo,
	}
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
}

// --- POST /api/messages/send ---

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	senderID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}
	receiverID, err := bson.ObjectIDFromHex(req.ReceiverID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid receiver_id")
		return
	}

	// No active match, no messaging. This is a permission failure, not a
	// lookup failure: the receiver may well exist.
	match, err := h.matchRepo.FindActiveByPair(r.Context(), senderID, receiverID)
	if err != nil {
		log.Printf("Error finding match: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if match == nil {
		writeError(w, http.StatusForbidden, "You can only message matched users")
		return
	}

	message := &models.Message{
		MatchID:    match.ID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    req.Content,
	}
	if err := h.messageRepo.Create(r.Context(), message); err != nil {
		log.Printf("Error creating message: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.matchRepo.SetLastMessageAt(r.Context(), match.ID, time.Now()); err != nil {
		log.Printf("Error updating last_message_at: %v", err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message_id": message.ID.Hex(),
		"sent_at":    message.SentAt,
	})
}

// --- GET /api/messages/{match_id} ---

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	matchID, err := bson.ObjectIDFromHex(chi.URLParam(r, "match_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid match ID")
		return
	}

	match, err := h.matchRepo.FindByID(r.Context(), matchID)
	if err != nil {
		log.Printf("Error finding match: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	// Reject non-participants before touching any message data. A missing
	// match gets the same answer, so ids cannot be probed.
	if match == nil || !match.HasParticipant(userID) {
		writeError(w, http.StatusForbidden, "Access denied")
		return
	}

	messages, err := h.messageRepo.FindByMatch(r.Context(), matchID)
	if err != nil {
		log.Printf("Error loading messages: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// Reading marks everything addressed to the caller as read.
	if err := h.messageRepo.MarkRead(r.Context(), matchID, userID); err != nil {
		log.Printf("Error marking messages read: %v", err)
	}

	writeJSON(w, http.StatusOK, messages)
}
