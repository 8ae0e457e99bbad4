package ledger

import (
	"time"

	"elitezone/internal/metrics"
	"elitezone/internal/models"
	"elitezone/internal/money"
	"elitezone/internal/websocket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// prependTransaction inserts at the head: history views show newest first.
// Must be called with the lock held.
func (s *Service) prependTransaction(tx models.Transaction) {
	s.transactions = append([]models.Transaction{tx}, s.transactions...)
}

func (s *Service) transactionIndex(txID string) int {
	for i := range s.transactions {
		if s.transactions[i].ID == txID {
			return i
		}
	}
	return -1
}

func (s *Service) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Service) TransactionsByUser(userID string) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out
}

// PendingTransactions lists pending requests, optionally filtered by type,
// for the admin approval queue.
func (s *Service) PendingTransactions(txType models.TransactionType) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.Status != models.TxPending {
			continue
		}
		if txType != "" && tx.Type != txType {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// RequestDeposit records a pending deposit carrying the payment metadata.
// The wallet is untouched until an admin approves.
func (s *Service) RequestDeposit(userID string, amount decimal.Decimal, metadata *models.TxMetadata) (models.Transaction, error) {
	if amount.Sign() <= 0 {
		return models.Transaction{}, ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ui := s.userIndex(userID)
	if ui < 0 {
		return models.Transaction{}, ErrUserNotFound
	}
	tx := models.Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserEmail: s.users[ui].Email,
		Amount:    amount,
		Type:      models.TxDeposit,
		Status:    models.TxPending,
		Timestamp: time.Now(),
		Metadata:  metadata,
	}
	s.prependTransaction(tx)
	s.persist()
	return tx, nil
}

// RequestWithdrawal records a pending withdrawal. The balance is checked
// here only to refuse obviously bad requests; nothing is debited until
// approval, which re-checks against the balance at that moment.
func (s *Service) RequestWithdrawal(userID string, amount decimal.Decimal, metadata *models.TxMetadata) (models.Transaction, error) {
	if amount.Sign() <= 0 {
		return models.Transaction{}, ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ui := s.userIndex(userID)
	if ui < 0 {
		return models.Transaction{}, ErrUserNotFound
	}
	if s.users[ui].Wallet.LessThan(amount) {
		return models.Transaction{}, ErrInsufficientFunds
	}
	tx := models.Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserEmail: s.users[ui].Email,
		Amount:    amount,
		Type:      models.TxWithdraw,
		Status:    models.TxPending,
		Timestamp: time.Now(),
		Metadata:  metadata,
	}
	s.prependTransaction(tx)
	s.persist()
	return tx, nil
}

// ApproveTransaction settles a pending deposit or withdrawal. Approving a
// transaction that is no longer pending is a no-op, so double-processing a
// request has no additional wallet effect. A withdrawal whose owner no
// longer covers the amount is refused and stays pending.
func (s *Service) ApproveTransaction(txID string) (models.Transaction, error) {
	s.mu.Lock()
	ti := s.transactionIndex(txID)
	if ti < 0 {
		s.mu.Unlock()
		return models.Transaction{}, ErrTransactionNotFound
	}
	tx := s.transactions[ti]
	if tx.Status != models.TxPending {
		s.mu.Unlock()
		return tx, nil
	}
	ui := s.userIndex(tx.UserID)
	if ui < 0 {
		s.mu.Unlock()
		return models.Transaction{}, ErrUserNotFound
	}
	switch tx.Type {
	case models.TxDeposit:
		s.users[ui].Wallet = s.users[ui].Wallet.Add(tx.Amount)
	case models.TxWithdraw:
		if s.users[ui].Wallet.LessThan(tx.Amount) {
			s.mu.Unlock()
			return tx, ErrInsufficientFunds
		}
		next := s.users[ui].Wallet.Sub(tx.Amount)
		if next.Sign() < 0 {
			next = decimal.Zero
		}
		s.users[ui].Wallet = next
	}
	s.transactions[ti].Status = models.TxApproved
	approved := s.transactions[ti]
	balance := money.FormatAmount(s.users[ui].Wallet)
	s.persist()
	s.mu.Unlock()

	metrics.TransactionApprovals.WithLabelValues(string(approved.Type)).Inc()
	s.broadcast(approved.UserID, websocket.Event{Kind: "wallet", Balance: balance})
	return approved, nil
}

// RejectTransaction marks a pending request rejected. No wallet effect:
// withdrawals are never debited at request time, so there is nothing to put
// back.
func (s *Service) RejectTransaction(txID string) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ti := s.transactionIndex(txID)
	if ti < 0 {
		return models.Transaction{}, ErrTransactionNotFound
	}
	if s.transactions[ti].Status != models.TxPending {
		return s.transactions[ti], nil
	}
	s.transactions[ti].Status = models.TxRejected
	s.persist()
	return s.transactions[ti], nil
}

// AdjustWallet applies a manual admin credit or debit and records it as an
// approved manual_adjust transaction. Subtractions have no floor and may
// drive the balance negative, unlike withdrawal approval.
func (s *Service) AdjustWallet(userID string, amount decimal.Decimal, subtract bool) (models.Transaction, error) {
	if amount.Sign() <= 0 {
		return models.Transaction{}, ErrInvalidAmount
	}
	s.mu.Lock()
	ui := s.userIndex(userID)
	if ui < 0 {
		s.mu.Unlock()
		return models.Transaction{}, ErrUserNotFound
	}
	note := "Manual adjustment (add)"
	if subtract {
		s.users[ui].Wallet = s.users[ui].Wallet.Sub(amount)
		note = "Manual adjustment (subtract)"
	} else {
		s.users[ui].Wallet = s.users[ui].Wallet.Add(amount)
	}
	tx := models.Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserEmail: s.users[ui].Email,
		Amount:    amount,
		Type:      models.TxManualAdjust,
		Status:    models.TxApproved,
		Timestamp: time.Now(),
		Note:      note,
	}
	s.prependTransaction(tx)
	balance := money.FormatAmount(s.users[ui].Wallet)
	s.persist()
	s.mu.Unlock()

	s.broadcast(userID, websocket.Event{Kind: "wallet", Balance: balance})
	return tx, nil
}
