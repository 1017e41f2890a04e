package handlers

import (
	"encoding/json"
	"net/http"

	"amora-backend/internal/middleware"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// currentUserID pulls the authenticated user's ObjectID from the request
// context. Writes the error response itself; callers just return on !ok.
func currentUserID(w http.ResponseWriter, r *http.Request) (bson.ObjectID, bool) {
	idHex := middleware.GetUserID(r.Context())
	if idHex == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return bson.ObjectID{}, false
	}
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return bson.ObjectID{}, false
	}
	return id, true
}
