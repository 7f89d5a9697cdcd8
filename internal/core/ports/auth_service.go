package ports

import (
	"context"
	"time"

	"github.com/shoplite/store-api/internal/core/domain"
)

// LoginResult carries the issued credential back to the transport layer so it
// can set the cookie with a matching expiry.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login authenticates against the user record store and issues a user
	// credential. persistent selects the 10-day TTL over the 30-minute one.
	Login(ctx context.Context, username, password string, persistent bool) (*LoginResult, error)
	// AdminLogin is Login against the admin record store, issuing an admin
	// credential.
	AdminLogin(ctx context.Context, username, password string, persistent bool) (*LoginResult, error)
	// Logout records the logout in the activity log. The credential itself
	// stays valid until expiry; only the client's cookie is cleared.
	Logout(ctx context.Context, username string)
}
