package handlers

import (
	"net/http"
	"strings"

	"mosaic-media/internal/auth"
	"mosaic-media/internal/middleware"
)

// JWTSecret signs dashboard tokens. Set once at startup from config.
var JWTSecret []byte

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		respondError(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	user, err := h.Store.CreateUser(req.Email, hash, "editor")
	if err != nil {
		respondError(w, http.StatusConflict, "email is already registered")
		return
	}

	token, err := auth.IssueToken(JWTSecret, user.ID, user.Email, user.Role)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not generate token")
		return
	}

	respond(w, http.StatusCreated, map[string]any{"token": token})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Store.GetUserByEmail(strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if err := auth.CheckPassword(req.Password, user.PasswordHash); err != nil {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := auth.IssueToken(JWTSecret, user.ID, user.Email, user.Role)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not generate token")
		return
	}

	respond(w, http.StatusOK, map[string]any{"token": token})
}

// Dashboard answers the admin gate's role probe with a fresh user
// record, so a role change invalidates outstanding tokens.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	user, err := h.Store.GetUserByID(claims.UserID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "user not found")
		return
	}

	respond(w, http.StatusOK, map[string]any{"user": user})
}
