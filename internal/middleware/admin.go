package middleware

import (
	"net/http"

	"elitezone/internal/models"
)

type UserResolver interface {
	UserByID(userID string) (models.User, error)
}

// RequireAdmin admits admin-scoped tokens only. Tokens backed by a user
// record are re-checked against the live record, so revoking the admin flag
// or banning the account cuts off outstanding sessions; master-credential
// tokens carry no user id and pass as-is.
func RequireAdmin(users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAdminFromContext(r.Context()) {
				http.Error(w, "admin privileges required", http.StatusForbidden)
				return
			}
			userID, _ := UserIDFromContext(r.Context())
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}
			user, err := users.UserByID(userID)
			if err != nil {
				http.Error(w, "admin privileges required", http.StatusForbidden)
				return
			}
			if !user.IsAdmin || user.IsBanned {
				http.Error(w, "admin privileges required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
