package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elitezone/internal/auth"
	"elitezone/internal/config"
	"elitezone/internal/ledger"
	"elitezone/internal/models"
	"elitezone/internal/websocket"

	"github.com/shopspring/decimal"
)

type stubLedger struct {
	registerUserFn        func(input ledger.RegisterInput) (models.User, error)
	authenticateFn        func(identifier, password string) (models.User, error)
	authenticateAdminFn   func(identifier, password string) (models.User, error)
	usersFn               func() []models.User
	userByIDFn            func(userID string) (models.User, error)
	updateProfileFn       func(userID string, update ledger.ProfileUpdate) (models.User, error)
	toggleBanFn           func(userID string) (models.User, error)
	statsFn               func() ledger.Stats
	matchesFn             func() []models.Match
	matchByIDFn           func(matchID string) (models.Match, error)
	createMatchFn         func(m models.Match) (models.Match, error)
	updateMatchFn         func(m models.Match) (models.Match, error)
	deleteMatchFn         func(matchID string) error
	joinMatchFn           func(userID, matchID, gameName string, slot int) (ledger.JoinResult, error)
	cancelMatchFn         func(matchID string) (int, error)
	selectWinnerFn        func(matchID, userID string) (models.Match, error)
	transactionsFn        func() []models.Transaction
	transactionsByUserFn  func(userID string) []models.Transaction
	pendingTransactionsFn func(txType models.TransactionType) []models.Transaction
	requestDepositFn      func(userID string, amount decimal.Decimal, metadata *models.TxMetadata) (models.Transaction, error)
	requestWithdrawalFn   func(userID string, amount decimal.Decimal, metadata *models.TxMetadata) (models.Transaction, error)
	approveTransactionFn  func(txID string) (models.Transaction, error)
	rejectTransactionFn   func(txID string) (models.Transaction, error)
	adjustWalletFn        func(userID string, amount decimal.Decimal, subtract bool) (models.Transaction, error)
	configFn              func() models.AppConfig
	updateConfigFn        func(cfg models.AppConfig) models.AppConfig
}

func (s stubLedger) RegisterUser(input ledger.RegisterInput) (models.User, error) {
	if s.registerUserFn == nil {
		return models.User{}, nil
	}
	return s.registerUserFn(input)
}

func (s stubLedger) Authenticate(identifier, password string) (models.User, error) {
	if s.authenticateFn == nil {
		return models.User{}, nil
	}
	return s.authenticateFn(identifier, password)
}

func (s stubLedger) AuthenticateAdmin(identifier, password string) (models.User, error) {
	if s.authenticateAdminFn == nil {
		return models.User{}, ledger.ErrInvalidCredentials
	}
	return s.authenticateAdminFn(identifier, password)
}

func (s stubLedger) Users() []models.User {
	if s.usersFn == nil {
		return nil
	}
	return s.usersFn()
}

func (s stubLedger) UserByID(userID string) (models.User, error) {
	if s.userByIDFn == nil {
		return models.User{}, ledger.ErrUserNotFound
	}
	return s.userByIDFn(userID)
}

func (s stubLedger) UpdateProfile(userID string, update ledger.ProfileUpdate) (models.User, error) {
	if s.updateProfileFn == nil {
		return models.User{}, nil
	}
	return s.updateProfileFn(userID, update)
}

func (s stubLedger) ToggleBan(userID string) (models.User, error) {
	if s.toggleBanFn == nil {
		return models.User{}, nil
	}
	return s.toggleBanFn(userID)
}

func (s stubLedger) Stats() ledger.Stats {
	if s.statsFn == nil {
		return ledger.Stats{}
	}
	return s.statsFn()
}

func (s stubLedger) Matches() []models.Match {
	if s.matchesFn == nil {
		return nil
	}
	return s.matchesFn()
}

func (s stubLedger) MatchByID(matchID string) (models.Match, error) {
	if s.matchByIDFn == nil {
		return models.Match{}, ledger.ErrMatchNotFound
	}
	return s.matchByIDFn(matchID)
}

func (s stubLedger) CreateMatch(m models.Match) (models.Match, error) {
	if s.createMatchFn == nil {
		return m, nil
	}
	return s.createMatchFn(m)
}

func (s stubLedger) UpdateMatch(m models.Match) (models.Match, error) {
	if s.updateMatchFn == nil {
		return m, nil
	}
	return s.updateMatchFn(m)
}

func (s stubLedger) DeleteMatch(matchID string) error {
	if s.deleteMatchFn == nil {
		return nil
	}
	return s.deleteMatchFn(matchID)
}

func (s stubLedger) JoinMatch(userID, matchID, gameName string, slot int) (ledger.JoinResult, error) {
	if s.joinMatchFn == nil {
		return ledger.JoinResult{}, nil
	}
	return s.joinMatchFn(userID, matchID, gameName, slot)
}

func (s stubLedger) CancelMatch(matchID string) (int, error) {
	if s.cancelMatchFn == nil {
		return 0, nil
	}
	return s.cancelMatchFn(matchID)
}

func (s stubLedger) SelectWinner(matchID, userID string) (models.Match, error) {
	if s.selectWinnerFn == nil {
		return models.Match{}, nil
	}
	return s.selectWinnerFn(matchID, userID)
}

func (s stubLedger) Transactions() []models.Transaction {
	if s.transactionsFn == nil {
		return nil
	}
	return s.transactionsFn()
}

func (s stubLedger) TransactionsByUser(userID string) []models.Transaction {
	if s.transactionsByUserFn == nil {
		return nil
	}
	return s.transactionsByUserFn(userID)
}

func (s stubLedger) PendingTransactions(txType models.TransactionType) []models.Transaction {
	if s.pendingTransactionsFn == nil {
		return nil
	}
	return s.pendingTransactionsFn(txType)
}

func (s stubLedger) RequestDeposit(userID string, amount decimal.Decimal, metadata *models.TxMetadata) (models.Transaction, error) {
	if s.requestDepositFn == nil {
		return models.Transaction{}, nil
	}
	return s.requestDepositFn(userID, amount, metadata)
}

func (s stubLedger) RequestWithdrawal(userID string, amount decimal.Decimal, metadata *models.TxMetadata) (models.Transaction, error) {
	if s.requestWithdrawalFn == nil {
		return models.Transaction{}, nil
	}
	return s.requestWithdrawalFn(userID, amount, metadata)
}

func (s stubLedger) ApproveTransaction(txID string) (models.Transaction, error) {
	if s.approveTransactionFn == nil {
		return models.Transaction{}, nil
	}
	return s.approveTransactionFn(txID)
}

func (s stubLedger) RejectTransaction(txID string) (models.Transaction, error) {
	if s.rejectTransactionFn == nil {
		return models.Transaction{}, nil
	}
	return s.rejectTransactionFn(txID)
}

func (s stubLedger) AdjustWallet(userID string, amount decimal.Decimal, subtract bool) (models.Transaction, error) {
	if s.adjustWalletFn == nil {
		return models.Transaction{}, nil
	}
	return s.adjustWalletFn(userID, amount, subtract)
}

func (s stubLedger) Config() models.AppConfig {
	if s.configFn == nil {
		return models.AppConfig{}
	}
	return s.configFn()
}

func (s stubLedger) UpdateConfig(cfg models.AppConfig) models.AppConfig {
	if s.updateConfigFn == nil {
		return cfg
	}
	return s.updateConfigFn(cfg)
}

type stubSessions struct {
	startFn      func(user models.User) (string, error)
	startAdminFn func(userID string) (string, error)
	restoreFn    func(userID string) (models.User, error)
}

func (s stubSessions) Start(user models.User) (string, error) {
	if s.startFn == nil {
		return "user-token", nil
	}
	return s.startFn(user)
}

func (s stubSessions) StartAdmin(userID string) (string, error) {
	if s.startAdminFn == nil {
		return "admin-token", nil
	}
	return s.startAdminFn(userID)
}

func (s stubSessions) Restore(userID string) (models.User, error) {
	if s.restoreFn == nil {
		return models.User{ID: userID}, nil
	}
	return s.restoreFn(userID)
}

func testConfig() config.Config {
	return config.Config{
		Port:           "8080",
		JWTSecret:      "test-secret",
		TokenTTL:       time.Minute,
		AllowedOrigins: "*",
		AdminID:        "@admin11",
		AdminKey:       "masterkey",
	}
}

func newTestHandler(ledger stubLedger, sessions stubSessions) *Handler {
	return New(testConfig(), ledger, sessions, websocket.NewHub())
}

func userToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.GenerateToken("test-secret", userID, false, time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken("test-secret", "", true, time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}
