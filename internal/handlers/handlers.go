package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"elitezone/internal/ledger"
	"elitezone/internal/models"
	"elitezone/internal/money"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondLedgerError maps ledger sentinel errors onto HTTP error codes.
func respondLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "user_not_found")
	case errors.Is(err, ledger.ErrMatchNotFound):
		respondError(w, http.StatusNotFound, "match_not_found")
	case errors.Is(err, ledger.ErrTransactionNotFound):
		respondError(w, http.StatusNotFound, "transaction_not_found")
	case errors.Is(err, ledger.ErrUserBanned):
		respondError(w, http.StatusForbidden, "account_banned")
	case errors.Is(err, ledger.ErrEmailTaken):
		respondError(w, http.StatusConflict, "email_already_registered")
	case errors.Is(err, ledger.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid_credentials")
	case errors.Is(err, ledger.ErrAlreadyJoined):
		respondError(w, http.StatusConflict, "already_joined")
	case errors.Is(err, ledger.ErrMatchFull):
		respondError(w, http.StatusConflict, "slot_full")
	case errors.Is(err, ledger.ErrSlotTaken):
		respondError(w, http.StatusConflict, "slot_taken")
	case errors.Is(err, ledger.ErrInvalidSlot):
		respondError(w, http.StatusBadRequest, "invalid_slot")
	case errors.Is(err, ledger.ErrInsufficientFunds):
		respondError(w, http.StatusBadRequest, "insufficient_balance")
	case errors.Is(err, ledger.ErrInvalidAmount):
		respondError(w, http.StatusBadRequest, "invalid_amount")
	case errors.Is(err, ledger.ErrMatchFinished):
		respondError(w, http.StatusConflict, "match_finished")
	case errors.Is(err, ledger.ErrMatchActive):
		respondError(w, http.StatusConflict, "match_not_finished")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error")
	}
}

func userResponse(user models.User) map[string]any {
	return map[string]any{
		"id":            user.ID,
		"email":         user.Email,
		"wallet":        money.FormatAmount(user.Wallet),
		"full_name":     user.FullName,
		"game_id":       user.GameID,
		"profile_photo": user.ProfilePhoto,
		"created_at":    user.CreatedAt,
		"is_banned":     user.IsBanned,
		"is_admin":      user.IsAdmin,
	}
}

// matchResponse hides the room access fields from everyone but joined
// players and admins.
func matchResponse(match models.Match, viewerID string, isAdmin bool) models.Match {
	if isAdmin || match.HasPlayer(viewerID) {
		return match
	}
	match.RoomID = ""
	match.RoomPassword = ""
	return match
}
