package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"elitezone/internal/ledger"
	"elitezone/internal/middleware"
	"elitezone/internal/models"
	"elitezone/internal/money"
	"elitezone/internal/validator"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	viewer, isAdmin := h.viewerID(r)
	matches := h.ledger.Matches()
	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchResponse(m, viewer, isAdmin))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	match, err := h.ledger.MatchByID(chi.URLParam(r, "id"))
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	viewer, isAdmin := h.viewerID(r)
	respondJSON(w, http.StatusOK, matchResponse(match, viewer, isAdmin))
}

type joinRequest struct {
	GameName   string `json:"game_name"`
	SlotNumber int    `json:"slot_number"`
}

func (h *Handler) JoinMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	gameName := strings.TrimSpace(req.GameName)
	if gameName == "" {
		respondError(w, http.StatusBadRequest, "in-game name is required")
		return
	}
	result, err := h.ledger.JoinMatch(userID, chi.URLParam(r, "id"), gameName, req.SlotNumber)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"match":        matchResponse(result.Match, userID, false),
		"registration": result.Registration,
		"wallet":       money.FormatAmount(result.Balance.Wallet),
	})
}

type profileRequest struct {
	FullName     *string `json:"full_name"`
	GameID       *string `json:"game_id"`
	ProfilePhoto *string `json:"profile_photo"`
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.GameID != nil {
		if err := validator.ValidateGameID(*req.GameID); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	user, err := h.ledger.UpdateProfile(userID, ledger.ProfileUpdate{
		FullName:     req.FullName,
		GameID:       req.GameID,
		ProfilePhoto: req.ProfilePhoto,
	})
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, userResponse(user))
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.ledger.Config())
}
