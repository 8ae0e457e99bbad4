package session

import (
	"errors"
	"time"

	"elitezone/internal/auth"
	"elitezone/internal/models"
)

var (
	ErrNoSession      = errors.New("no active session")
	ErrSessionRevoked = errors.New("session revoked")
)

// UserResolver looks up the live user record; the ledger service satisfies
// it.
type UserResolver interface {
	UserByID(userID string) (models.User, error)
}

// Manager turns session tokens into live user records. A token only carries
// the user id, so every restore observes admin-side edits (bans, wallet
// adjustments) made since the session started.
type Manager struct {
	secret string
	ttl    time.Duration
	users  UserResolver
}

func NewManager(secret string, ttl time.Duration, users UserResolver) *Manager {
	return &Manager{secret: secret, ttl: ttl, users: users}
}

// Start mints a token referencing the user. The caller is responsible for
// having inserted the user on the registration path; login leaves the
// collection unchanged.
func (m *Manager) Start(user models.User) (string, error) {
	return auth.GenerateToken(m.secret, user.ID, false, m.ttl)
}

// StartAdmin mints an admin-scoped token. userID may be empty for the
// master-credential login, which is not backed by a user record.
func (m *Manager) StartAdmin(userID string) (string, error) {
	return auth.GenerateToken(m.secret, userID, true, m.ttl)
}

// Restore resolves a user id from a previously issued token to the live
// record. A missing user yields no session; a banned user revokes the
// session.
func (m *Manager) Restore(userID string) (models.User, error) {
	user, err := m.users.UserByID(userID)
	if err != nil {
		return models.User{}, ErrNoSession
	}
	if user.IsBanned {
		return models.User{}, ErrSessionRevoked
	}
	return user, nil
}
