package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"elitezone/internal/models"
	"elitezone/internal/money"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.ledger.Stats())
}

func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.ledger.Users()
	out := make([]map[string]any, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse(u))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *Handler) AdminToggleBan(w http.ResponseWriter, r *http.Request) {
	user, err := h.ledger.ToggleBan(chi.URLParam(r, "id"))
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, userResponse(user))
}

type adjustRequest struct {
	Amount    string `json:"amount"`
	Direction string `json:"direction"`
}

func (h *Handler) AdminAdjustWallet(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var subtract bool
	switch strings.ToLower(req.Direction) {
	case "add", "":
		subtract = false
	case "subtract":
		subtract = true
	default:
		respondError(w, http.StatusBadRequest, "direction must be add or subtract")
		return
	}
	tx, err := h.ledger.AdjustWallet(chi.URLParam(r, "id"), amount, subtract)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tx)
}

// AdminListTransactions returns every transaction, or only the pending
// queue when status=pending is given. The type filter narrows either view.
func (h *Handler) AdminListTransactions(w http.ResponseWriter, r *http.Request) {
	txType := models.TransactionType(r.URL.Query().Get("type"))
	if r.URL.Query().Get("status") == string(models.TxPending) {
		respondJSON(w, http.StatusOK, h.ledger.PendingTransactions(txType))
		return
	}
	transactions := h.ledger.Transactions()
	if txType == "" {
		respondJSON(w, http.StatusOK, transactions)
		return
	}
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Type == txType {
			filtered = append(filtered, tx)
		}
	}
	respondJSON(w, http.StatusOK, filtered)
}

func (h *Handler) AdminApproveTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := h.ledger.ApproveTransaction(chi.URLParam(r, "id"))
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tx)
}

func (h *Handler) AdminRejectTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := h.ledger.RejectTransaction(chi.URLParam(r, "id"))
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tx)
}

func (h *Handler) AdminCreateMatch(w http.ResponseWriter, r *http.Request) {
	var match models.Match
	if err := json.NewDecoder(r.Body).Decode(&match); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(match.Title) == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if match.MaxPlayers <= 0 {
		respondError(w, http.StatusBadRequest, "max_players must be positive")
		return
	}
	created, err := h.ledger.CreateMatch(match)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handler) AdminUpdateMatch(w http.ResponseWriter, r *http.Request) {
	var match models.Match
	if err := json.NewDecoder(r.Body).Decode(&match); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	match.ID = chi.URLParam(r, "id")
	updated, err := h.ledger.UpdateMatch(match)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) AdminDeleteMatch(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.DeleteMatch(chi.URLParam(r, "id")); err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) AdminCancelMatch(w http.ResponseWriter, r *http.Request) {
	refunded, err := h.ledger.CancelMatch(chi.URLParam(r, "id"))
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "cancelled",
		"refunded": refunded,
	})
}

type winnerRequest struct {
	UserID string `json:"user_id"`
}

func (h *Handler) AdminSelectWinner(w http.ResponseWriter, r *http.Request) {
	var req winnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	match, err := h.ledger.SelectWinner(chi.URLParam(r, "id"), req.UserID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, match)
}

func (h *Handler) AdminGetConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.ledger.Config())
}

func (h *Handler) AdminUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.AppConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	respondJSON(w, http.StatusOK, h.ledger.UpdateConfig(cfg))
}
