package ledger

import (
	"time"

	"elitezone/internal/metrics"
	"elitezone/internal/models"
	"elitezone/internal/money"
	"elitezone/internal/websocket"

	"github.com/google/uuid"
)

func copyMatch(m models.Match) models.Match {
	out := m
	out.JoinedPlayers = append([]string(nil), m.JoinedPlayers...)
	out.Registrations = append([]models.Registration(nil), m.Registrations...)
	return out
}

func (s *Service) matchIndex(matchID string) int {
	for i := range s.matches {
		if s.matches[i].ID == matchID {
			return i
		}
	}
	return -1
}

func (s *Service) Matches() []models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Match, len(s.matches))
	for i, m := range s.matches {
		out[i] = copyMatch(m)
	}
	return out
}

func (s *Service) MatchByID(matchID string) (models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.matchIndex(matchID)
	if i < 0 {
		return models.Match{}, ErrMatchNotFound
	}
	return copyMatch(s.matches[i]), nil
}

// CreateMatch inserts a new match at the head of the list, the position new
// matches appear in the app.
func (s *Service) CreateMatch(m models.Match) (models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = models.MatchUpcoming
	}
	m.JoinedPlayers = []string{}
	m.Registrations = []models.Registration{}
	s.matches = append([]models.Match{m}, s.matches...)
	s.persist()
	return copyMatch(m), nil
}

// UpdateMatch replaces a match record from the admin edit form. The joined
// player and registration lists are never taken from the input; they belong
// to the join flow and keep their invariants here.
func (s *Service) UpdateMatch(m models.Match) (models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.matchIndex(m.ID)
	if i < 0 {
		return models.Match{}, ErrMatchNotFound
	}
	m.JoinedPlayers = s.matches[i].JoinedPlayers
	m.Registrations = s.matches[i].Registrations
	s.matches[i] = m
	s.persist()
	return copyMatch(m), nil
}

// DeleteMatch removes a finished match record. Active matches must be
// cancelled first so joined players get their refunds.
func (s *Service) DeleteMatch(matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.matchIndex(matchID)
	if i < 0 {
		return ErrMatchNotFound
	}
	if s.matches[i].Status != models.MatchFinished {
		return ErrMatchActive
	}
	s.matches = append(s.matches[:i], s.matches[i+1:]...)
	s.persist()
	return nil
}

type JoinResult struct {
	Match        models.Match
	Registration models.Registration
	Balance      models.User
}

// JoinMatch runs the join preconditions in order (first failure wins), then
// applies the debit, the player/registration append and the entry_fee
// transaction as one state update under the lock.
func (s *Service) JoinMatch(userID, matchID, gameName string, slot int) (JoinResult, error) {
	s.mu.Lock()
	ui := s.userIndex(userID)
	if ui < 0 {
		s.mu.Unlock()
		return JoinResult{}, ErrUserNotFound
	}
	if s.users[ui].IsBanned {
		s.mu.Unlock()
		return JoinResult{}, ErrUserBanned
	}
	mi := s.matchIndex(matchID)
	if mi < 0 {
		s.mu.Unlock()
		return JoinResult{}, ErrMatchNotFound
	}
	match := &s.matches[mi]
	if match.HasPlayer(userID) {
		s.mu.Unlock()
		return JoinResult{}, ErrAlreadyJoined
	}
	if len(match.JoinedPlayers) >= match.MaxPlayers {
		s.mu.Unlock()
		return JoinResult{}, ErrMatchFull
	}
	if s.users[ui].Wallet.LessThan(match.EntryFee) {
		s.mu.Unlock()
		return JoinResult{}, ErrInsufficientFunds
	}

	taken := make(map[int]bool, len(match.Registrations))
	for _, reg := range match.Registrations {
		taken[reg.SlotNumber] = true
	}
	if slot == 0 {
		for n := 1; n <= match.MaxPlayers; n++ {
			if !taken[n] {
				slot = n
				break
			}
		}
	} else {
		if slot < 1 || slot > match.MaxPlayers {
			s.mu.Unlock()
			return JoinResult{}, ErrInvalidSlot
		}
		if taken[slot] {
			s.mu.Unlock()
			return JoinResult{}, ErrSlotTaken
		}
	}

	s.users[ui].Wallet = s.users[ui].Wallet.Sub(match.EntryFee)
	registration := models.Registration{
		UserID:     userID,
		GameName:   gameName,
		SlotNumber: slot,
	}
	match.JoinedPlayers = append(match.JoinedPlayers, userID)
	match.Registrations = append(match.Registrations, registration)
	s.prependTransaction(models.Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserEmail: s.users[ui].Email,
		Amount:    match.EntryFee,
		Type:      models.TxEntryFee,
		Status:    models.TxApproved,
		Timestamp: time.Now(),
		Note:      match.Title,
	})
	result := JoinResult{
		Match:        copyMatch(*match),
		Registration: registration,
		Balance:      s.users[ui],
	}
	s.persist()
	s.mu.Unlock()

	metrics.MatchJoins.Inc()
	s.broadcast(userID, websocket.Event{Kind: "wallet", Balance: money.FormatAmount(result.Balance.Wallet)})
	return result, nil
}

// CancelMatch refunds every joined player and retires the match. Refunds are
// best effort: a player missing from the user list is skipped, the rest are
// still refunded and the match still ends finished and cancelled.
func (s *Service) CancelMatch(matchID string) (int, error) {
	s.mu.Lock()
	mi := s.matchIndex(matchID)
	if mi < 0 {
		s.mu.Unlock()
		return 0, ErrMatchNotFound
	}
	match := &s.matches[mi]
	if match.Status == models.MatchFinished {
		s.mu.Unlock()
		return 0, ErrMatchFinished
	}

	type refundNote struct {
		userID  string
		balance string
	}
	var refunded []refundNote
	for _, uid := range match.JoinedPlayers {
		ui := s.userIndex(uid)
		if ui < 0 {
			continue
		}
		s.users[ui].Wallet = s.users[ui].Wallet.Add(match.EntryFee)
		s.prependTransaction(models.Transaction{
			ID:        uuid.NewString(),
			UserID:    uid,
			UserEmail: s.users[ui].Email,
			Amount:    match.EntryFee,
			Type:      models.TxRefund,
			Status:    models.TxApproved,
			Timestamp: time.Now(),
			Note:      "Refund: " + match.Title,
		})
		refunded = append(refunded, refundNote{userID: uid, balance: money.FormatAmount(s.users[ui].Wallet)})
	}
	match.Status = models.MatchFinished
	match.IsCancelled = true
	s.persist()
	s.mu.Unlock()

	metrics.MatchRefunds.Add(float64(len(refunded)))
	for _, r := range refunded {
		s.broadcast(r.userID, websocket.Event{Kind: "wallet", Balance: r.balance})
		s.broadcast(r.userID, websocket.Event{Kind: "match", MatchID: matchID, Message: "match cancelled, entry fee refunded"})
	}
	return len(refunded), nil
}

// SelectWinner credits the prize and finishes the match. The wallet is
// credited directly without a winning-typed transaction, so prize money does
// not appear in history views.
func (s *Service) SelectWinner(matchID, userID string) (models.Match, error) {
	s.mu.Lock()
	mi := s.matchIndex(matchID)
	if mi < 0 {
		s.mu.Unlock()
		return models.Match{}, ErrMatchNotFound
	}
	if s.matches[mi].Status == models.MatchFinished {
		s.mu.Unlock()
		return models.Match{}, ErrMatchFinished
	}
	ui := s.userIndex(userID)
	if ui < 0 {
		s.mu.Unlock()
		return models.Match{}, ErrUserNotFound
	}
	s.users[ui].Wallet = s.users[ui].Wallet.Add(s.matches[mi].Prize)
	s.matches[mi].Status = models.MatchFinished
	s.matches[mi].WinnerID = userID
	match := copyMatch(s.matches[mi])
	balance := money.FormatAmount(s.users[ui].Wallet)
	s.persist()
	s.mu.Unlock()

	s.broadcast(userID, websocket.Event{Kind: "wallet", Balance: balance})
	s.broadcast(userID, websocket.Event{Kind: "match", MatchID: matchID, Message: "you won the match"})
	return match, nil
}
