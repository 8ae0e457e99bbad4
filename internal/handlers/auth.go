package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"elitezone/internal/auth"
	"elitezone/internal/ledger"
	"elitezone/internal/middleware"
	"elitezone/internal/session"
	"elitezone/internal/validator"
	"elitezone/internal/websocket"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	GameID   string `json:"game_id"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateEmail(req.Email); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.ValidatePassword(req.Password); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.ValidateGameID(req.GameID); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.ledger.RegisterUser(ledger.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		GameID:   req.GameID,
	})
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	token, err := h.sessions.Start(user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"token": token,
		"user":  userResponse(user),
	})
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	user, err := h.ledger.Authenticate(strings.TrimSpace(req.Identifier), req.Password)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	token, err := h.sessions.Start(user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  userResponse(user),
	})
}

// Me is the session restore point: the live record is re-resolved on every
// call, so a ban applied since login ends the session here.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.sessions.Restore(userID)
	if err != nil {
		if errors.Is(err, session.ErrSessionRevoked) {
			respondError(w, http.StatusForbidden, "account_banned")
			return
		}
		respondError(w, http.StatusUnauthorized, "no_active_session")
		return
	}
	respondJSON(w, http.StatusOK, userResponse(user))
}

type adminLoginRequest struct {
	AdminID  string `json:"admin_id"`
	Password string `json:"password"`
}

// AdminLogin accepts the master credentials from config or any user account
// carrying the admin flag.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	adminID := strings.TrimSpace(req.AdminID)
	password := strings.TrimSpace(req.Password)
	if adminID == h.cfg.AdminID && password == h.cfg.AdminKey {
		token, err := h.sessions.StartAdmin("")
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to generate token")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"token": token})
		return
	}
	user, err := h.ledger.AuthenticateAdmin(adminID, password)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}
	token, err := h.sessions.StartAdmin(user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// WSEvents upgrades to a websocket carrying wallet updates and ban notices
// for the token's user.
func (h *Handler) WSEvents(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if token == "" {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	claims, err := auth.ParseToken(h.cfg.JWTSecret, token)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	websocket.ServeWS(w, r, h.hub, claims.UserID)
}

// viewerID best-effort resolves the requester on public endpoints so joined
// players see the room access fields.
func (h *Handler) viewerID(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	claims, err := auth.ParseToken(h.cfg.JWTSecret, strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return "", false
	}
	return claims.UserID, claims.Admin
}
