package handlers

import (
	"elitezone/internal/ledger"
	"elitezone/internal/models"

	"github.com/shopspring/decimal"
)

type Ledger interface {
	RegisterUser(input ledger.RegisterInput) (models.User, error)
	Authenticate(identifier, password string) (models.User, error)
	AuthenticateAdmin(identifier, password string) (models.User, error)
	Users() []models.User
	UserByID(userID string) (models.User, error)
	UpdateProfile(userID string, update ledger.ProfileUpdate) (models.User, error)
	ToggleBan(userID string) (models.User, error)
	Stats() ledger.Stats

	Matches() []models.Match
	MatchByID(matchID string) (models.Match, error)
	CreateMatch(m models.Match) (models.Match, error)
	UpdateMatch(m models.Match) (models.Match, error)
	DeleteMatch(matchID string) error
	JoinMatch(userID, matchID, gameName string, slot int) (ledger.JoinResult, error)
	CancelMatch(matchID string) (int, error)
	SelectWinner(matchID, userID string) (models.Match, error)

	Transactions() []models.Transaction
	TransactionsByUser(userID string) []models.Transaction
	PendingTransactions(txType models.TransactionType) []models.Transaction
	RequestDeposit(userID string, amount decimal.Decimal, metadata *models.TxMetadata) (models.Transaction, error)
	RequestWithdrawal(userID string, amount decimal.Decimal, metadata *models.TxMetadata) (models.Transaction, error)
	ApproveTransaction(txID string) (models.Transaction, error)
	RejectTransaction(txID string) (models.Transaction, error)
	AdjustWallet(userID string, amount decimal.Decimal, subtract bool) (models.Transaction, error)

	Config() models.AppConfig
	UpdateConfig(cfg models.AppConfig) models.AppConfig
}

type Sessions interface {
	Start(user models.User) (string, error)
	StartAdmin(userID string) (string, error)
	Restore(userID string) (models.User, error)
}
