package ledger

import (
	"errors"
	"testing"

	"elitezone/internal/models"

	"github.com/shopspring/decimal"
)

func TestRequestDepositStaysPending(t *testing.T) {
	service, _, _ := newTestService(t)

	tx, err := service.RequestDeposit("u1", decimal.NewFromInt(100), &models.TxMetadata{
		Method:      "bkash",
		TrxID:       "TRX12345",
		PhoneNumber: "+8801700000000",
	})
	if err != nil {
		t.Fatalf("deposit request failed: %v", err)
	}
	if tx.Status != models.TxPending || tx.Type != models.TxDeposit {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if tx.Metadata == nil || tx.Metadata.TrxID != "TRX12345" {
		t.Fatalf("expected payment metadata recorded")
	}
	if tx.UserEmail != "gamer@elitezone.com" {
		t.Fatalf("expected owner email denormalized, got %q", tx.UserEmail)
	}

	user, _ := service.UserByID("u1")
	if !user.Wallet.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("wallet must be untouched until approval, got %s", user.Wallet)
	}
}

func TestRequestDepositInvalidAmount(t *testing.T) {
	service, _, _ := newTestService(t)
	if _, err := service.RequestDeposit("u1", decimal.Zero, nil); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := service.RequestDeposit("missing", decimal.NewFromInt(10), nil); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestApproveDeposit(t *testing.T) {
	service, _, hub := newTestService(t)
	tx, err := service.RequestDeposit("u1", decimal.NewFromInt(100), nil)
	if err != nil {
		t.Fatalf("deposit request failed: %v", err)
	}

	approved, err := service.ApproveTransaction(tx.ID)
	if err != nil {
		t.Fatalf("approval failed: %v", err)
	}
	if approved.Status != models.TxApproved {
		t.Fatalf("expected approved status, got %s", approved.Status)
	}
	user, _ := service.UserByID("u1")
	if !user.Wallet.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected wallet 150, got %s", user.Wallet)
	}
	events := hub.eventsFor("u1")
	if len(events) != 1 || events[0].Kind != "wallet" || events[0].Balance != "150.00" {
		t.Fatalf("expected wallet event with 150.00, got %v", events)
	}

	// Double-processing is a no-op.
	if _, err := service.ApproveTransaction(tx.ID); err != nil {
		t.Fatalf("second approval must not fail: %v", err)
	}
	user, _ = service.UserByID("u1")
	if !user.Wallet.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("second approval must not credit again, got %s", user.Wallet)
	}
}

func TestRejectTransaction(t *testing.T) {
	service, _, _ := newTestService(t)
	tx, err := service.RequestDeposit("u1", decimal.NewFromInt(100), nil)
	if err != nil {
		t.Fatalf("deposit request failed: %v", err)
	}

	rejected, err := service.RejectTransaction(tx.ID)
	if err != nil {
		t.Fatalf("rejection failed: %v", err)
	}
	if rejected.Status != models.TxRejected {
		t.Fatalf("expected rejected status, got %s", rejected.Status)
	}
	user, _ := service.UserByID("u1")
	if !user.Wallet.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("rejection must not touch the wallet, got %s", user.Wallet)
	}

	again, err := service.RejectTransaction(tx.ID)
	if err != nil || again.Status != models.TxRejected {
		t.Fatalf("second rejection must be a no-op, got %v %s", err, again.Status)
	}
	if _, err := service.ApproveTransaction(tx.ID); err != nil {
		t.Fatalf("approving a rejected transaction must be a no-op: %v", err)
	}
	user, _ = service.UserByID("u1")
	if !user.Wallet.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("approving a rejected transaction must not credit, got %s", user.Wallet)
	}
}

func TestRequestWithdrawalChecksBalance(t *testing.T) {
	service, _, _ := newTestService(t)
	if _, err := service.RequestWithdrawal("u1", decimal.NewFromInt(100), nil); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if _, err := service.RequestWithdrawal("u1", decimal.NewFromInt(30), nil); err != nil {
		t.Fatalf("covered withdrawal request failed: %v", err)
	}
}

func TestApproveWithdrawal(t *testing.T) {
	service, _, _ := newTestService(t)
	tx, err := service.RequestWithdrawal("u1", decimal.NewFromInt(30), nil)
	if err != nil {
		t.Fatalf("withdrawal request failed: %v", err)
	}

	if _, err := service.ApproveTransaction(tx.ID); err != nil {
		t.Fatalf("approval failed: %v", err)
	}
	user, _ := service.UserByID("u1")
	if !user.Wallet.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected wallet 20 after withdrawal, got %s", user.Wallet)
	}
}

func TestApproveWithdrawalInsufficientAtApproval(t *testing.T) {
	service, _, _ := newTestService(t)
	tx, err := service.RequestWithdrawal("u1", decimal.NewFromInt(40), nil)
	if err != nil {
		t.Fatalf("withdrawal request failed: %v", err)
	}
	// Drain the wallet between request and approval.
	if _, err := service.AdjustWallet("u1", decimal.NewFromInt(30), true); err != nil {
		t.Fatalf("adjustment failed: %v", err)
	}

	if _, err := service.ApproveTransaction(tx.ID); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	pending := service.PendingTransactions("")
	if len(pending) != 1 || pending[0].ID != tx.ID {
		t.Fatalf("refused withdrawal must stay pending, got %v", pending)
	}
	user, _ := service.UserByID("u1")
	if !user.Wallet.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("refused approval must not debit, got %s", user.Wallet)
	}
}

func TestAdjustWalletAllowsNegativeBalance(t *testing.T) {
	service, _, _ := newTestService(t)

	tx, err := service.AdjustWallet("u1", decimal.NewFromInt(100), true)
	if err != nil {
		t.Fatalf("adjustment failed: %v", err)
	}
	if tx.Type != models.TxManualAdjust || tx.Status != models.TxApproved {
		t.Fatalf("unexpected adjustment transaction: %+v", tx)
	}
	user, _ := service.UserByID("u1")
	if !user.Wallet.Equal(decimal.NewFromInt(-50)) {
		t.Fatalf("expected wallet -50, got %s", user.Wallet)
	}
}

func TestTransactionsNewestFirst(t *testing.T) {
	service, _, _ := newTestService(t)
	if _, err := service.RequestDeposit("u1", decimal.NewFromInt(100), nil); err != nil {
		t.Fatalf("deposit request failed: %v", err)
	}
	if _, err := service.RequestWithdrawal("u1", decimal.NewFromInt(30), nil); err != nil {
		t.Fatalf("withdrawal request failed: %v", err)
	}

	txs := service.Transactions()
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if txs[0].Type != models.TxWithdraw || txs[1].Type != models.TxDeposit {
		t.Fatalf("expected newest first, got %s then %s", txs[0].Type, txs[1].Type)
	}
}

func TestPendingTransactionsTypeFilter(t *testing.T) {
	service, _, _ := newTestService(t)
	if _, err := service.RequestDeposit("u1", decimal.NewFromInt(100), nil); err != nil {
		t.Fatalf("deposit request failed: %v", err)
	}
	if _, err := service.RequestWithdrawal("u1", decimal.NewFromInt(30), nil); err != nil {
		t.Fatalf("withdrawal request failed: %v", err)
	}

	if got := len(service.PendingTransactions("")); got != 2 {
		t.Fatalf("expected 2 pending, got %d", got)
	}
	deposits := service.PendingTransactions(models.TxDeposit)
	if len(deposits) != 1 || deposits[0].Type != models.TxDeposit {
		t.Fatalf("expected deposit-only view, got %v", deposits)
	}
}
