package ledger

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"elitezone/internal/models"
	"elitezone/internal/storage"
	"elitezone/internal/websocket"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserBanned          = errors.New("account banned")
	ErrAlreadyJoined       = errors.New("already registered for this match")
	ErrMatchFull           = errors.New("tournament slot full")
	ErrSlotTaken           = errors.New("slot already taken")
	ErrInvalidSlot         = errors.New("invalid slot number")
	ErrInsufficientFunds   = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrMatchFinished       = errors.New("match already finished")
	ErrMatchActive         = errors.New("match is not finished")
)

const (
	keyUsers        = "elitezone_users"
	keyMatches      = "elitezone_matches"
	keyTransactions = "elitezone_transactions"
	keyAppConfig    = "elitezone_app_config"
)

// Snapshotter is the persistence adapter contract: whole JSON documents
// keyed by name. *storage.Store satisfies it.
type Snapshotter interface {
	Load(key string, dest any) (bool, error)
	Save(key string, value any) error
}

type EventHub interface {
	BroadcastEvent(userID string, event websocket.Event)
}

// Service owns the four collections (users, matches, transactions, app
// config) and is their only mutation entry point. A single mutex serializes
// every operation; the full state is re-persisted after each change.
type Service struct {
	mu           sync.Mutex
	users        []models.User
	matches      []models.Match
	transactions []models.Transaction
	config       models.AppConfig
	store        Snapshotter
	hub          EventHub
}

func NewService(store Snapshotter, hub EventHub) *Service {
	return &Service{
		store:  store,
		hub:    hub,
		config: models.DefaultAppConfig(),
	}
}

// Load restores all collections from the snapshot store. Missing documents
// fall back to first-launch seed data; the app config document is overlaid
// on top of the built-in defaults, so unknown persisted keys are ignored and
// persisted values win.
func (s *Service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	foundUsers, err := s.store.Load(keyUsers, &s.users)
	if err != nil {
		return err
	}
	if !foundUsers {
		s.users = models.SeedUsers(now)
		if err := s.store.Save(keyUsers, s.users); err != nil {
			return err
		}
	}

	foundMatches, err := s.store.Load(keyMatches, &s.matches)
	if err != nil {
		return err
	}
	if !foundMatches {
		s.matches = models.SeedMatches(now)
	}

	if _, err := s.store.Load(keyTransactions, &s.transactions); err != nil {
		return err
	}
	if s.transactions == nil {
		s.transactions = []models.Transaction{}
	}

	cfg := models.DefaultAppConfig()
	if _, err := s.store.Load(keyAppConfig, &cfg); err != nil {
		return err
	}
	s.config = cfg
	return nil
}

// persist rewrites every document. Must be called with the lock held.
// Failures are logged and swallowed: the in-memory state is authoritative
// and a crashed write loses at most the latest change.
func (s *Service) persist() {
	if err := s.store.Save(keyUsers, s.users); err != nil {
		log.Printf("persist users: %v", err)
	}
	if err := s.store.Save(keyMatches, s.matches); err != nil {
		log.Printf("persist matches: %v", err)
	}
	if err := s.store.Save(keyTransactions, s.transactions); err != nil {
		log.Printf("persist transactions: %v", err)
	}
	if err := s.store.Save(keyAppConfig, s.config); err != nil {
		log.Printf("persist app config: %v", err)
	}
}

func (s *Service) broadcast(userID string, event websocket.Event) {
	if s.hub != nil {
		s.hub.BroadcastEvent(userID, event)
	}
}

func (s *Service) userIndex(userID string) int {
	for i := range s.users {
		if s.users[i].ID == userID {
			return i
		}
	}
	return -1
}

func (s *Service) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Service) UserByID(userID string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndex(userID)
	if i < 0 {
		return models.User{}, ErrUserNotFound
	}
	return s.users[i], nil
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	GameID   string
}

func (s *Service) RegisterUser(input RegisterInput) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email := strings.TrimSpace(input.Email)
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return models.User{}, ErrEmailTaken
		}
	}
	fullName := input.FullName
	if fullName == "" {
		if at := strings.Index(email, "@"); at > 0 {
			fullName = email[:at]
		}
	}
	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  input.Password,
		FullName:  fullName,
		GameID:    input.GameID,
		CreatedAt: time.Now(),
	}
	s.users = append(s.users, user)
	s.persist()
	return user, nil
}

// Authenticate matches the identifier against the email (case-insensitive)
// or the game id, then compares the stored password directly.
func (s *Service) Authenticate(identifier, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if !strings.EqualFold(u.Email, identifier) && (u.GameID == "" || u.GameID != identifier) {
			continue
		}
		if u.Password != password {
			continue
		}
		if u.IsBanned {
			return models.User{}, ErrUserBanned
		}
		return u, nil
	}
	return models.User{}, ErrInvalidCredentials
}

// AuthenticateAdmin accepts only non-banned users carrying the admin flag.
// The master id/passphrase override is checked by the caller against config.
func (s *Service) AuthenticateAdmin(identifier, password string) (models.User, error) {
	user, err := s.Authenticate(identifier, password)
	if err != nil {
		return models.User{}, err
	}
	if !user.IsAdmin {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

type ProfileUpdate struct {
	FullName     *string
	GameID       *string
	ProfilePhoto *string
}

func (s *Service) UpdateProfile(userID string, update ProfileUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndex(userID)
	if i < 0 {
		return models.User{}, ErrUserNotFound
	}
	if update.FullName != nil {
		s.users[i].FullName = *update.FullName
	}
	if update.GameID != nil {
		s.users[i].GameID = *update.GameID
	}
	if update.ProfilePhoto != nil {
		s.users[i].ProfilePhoto = *update.ProfilePhoto
	}
	s.persist()
	return s.users[i], nil
}

// ToggleBan flips the ban flag. Banning pushes a notice so open sessions
// drop immediately; the session manager also re-checks the flag on every
// restore, so the ban holds even without a live socket.
func (s *Service) ToggleBan(userID string) (models.User, error) {
	s.mu.Lock()
	i := s.userIndex(userID)
	if i < 0 {
		s.mu.Unlock()
		return models.User{}, ErrUserNotFound
	}
	s.users[i].IsBanned = !s.users[i].IsBanned
	user := s.users[i]
	s.persist()
	s.mu.Unlock()

	if user.IsBanned {
		s.broadcast(user.ID, websocket.Event{Kind: "banned", Message: "ACCOUNT BLOCKED BY ADMIN"})
	}
	return user, nil
}

type Stats struct {
	Users               int `json:"users"`
	Matches             int `json:"matches"`
	PendingTransactions int `json:"pending_transactions"`
}

func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := 0
	for _, tx := range s.transactions {
		if tx.Status == models.TxPending {
			pending++
		}
	}
	return Stats{
		Users:               len(s.users),
		Matches:             len(s.matches),
		PendingTransactions: pending,
	}
}

// Config returns the current app configuration.
func (s *Service) Config() models.AppConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// UpdateConfig replaces the app configuration wholesale, as the admin
// settings save does.
func (s *Service) UpdateConfig(cfg models.AppConfig) models.AppConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.persist()
	return s.config
}

var _ Snapshotter = (*storage.Store)(nil)
