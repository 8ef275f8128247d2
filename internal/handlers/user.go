package handlers

import (
	"encoding/json"
	"net/http"

	"qpg-backend/internal/models"
	"qpg-backend/internal/services"
)

// UserHandler serves the in-memory user registry.
type UserHandler struct {
	users *services.UserStore
}

func NewUserHandler(users *services.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// Register stores the user and echoes it back.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	registered, err := h.users.Register(user)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User registered successfully",
		"user":    registered,
	})
}
