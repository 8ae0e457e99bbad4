package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"elitezone/internal/middleware"
	"elitezone/internal/models"
	"elitezone/internal/money"
	"elitezone/internal/validator"

	"github.com/shopspring/decimal"
)

var minTransactionAmount = decimal.NewFromInt(10)

func (h *Handler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.ledger.UserByID(userID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"balance": money.FormatAmount(user.Wallet),
	})
}

type depositRequest struct {
	Amount      string `json:"amount"`
	Method      string `json:"method"`
	TrxID       string `json:"trx_id"`
	PhoneNumber string `json:"phone_number"`
}

func (h *Handler) RequestDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if amount.LessThan(minTransactionAmount) {
		respondError(w, http.StatusBadRequest, "minimum deposit amount is 10")
		return
	}
	if err := validator.ValidateTrxID(req.TrxID); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.ValidatePhone(req.PhoneNumber); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	tx, err := h.ledger.RequestDeposit(userID, amount, &models.TxMetadata{
		Method:      strings.TrimSpace(req.Method),
		TrxID:       strings.TrimSpace(req.TrxID),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
	})
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}

type withdrawRequest struct {
	Amount      string `json:"amount"`
	Method      string `json:"method"`
	PhoneNumber string `json:"phone_number"`
}

func (h *Handler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if amount.LessThan(minTransactionAmount) {
		respondError(w, http.StatusBadRequest, "minimum withdrawal amount is 10")
		return
	}
	tx, err := h.ledger.RequestWithdrawal(userID, amount, &models.TxMetadata{
		Method:      strings.TrimSpace(req.Method),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
	})
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	respondJSON(w, http.StatusOK, h.ledger.TransactionsByUser(userID))
}
