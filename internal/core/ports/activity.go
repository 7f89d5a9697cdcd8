package ports

import (
	"context"

	"github.com/shoplite/store-api/internal/core/domain"
)

// ActivityRecorder is the append-only activity log sink. Append failures are
// treated as non-fatal by every caller: the primary operation (login, cart
// add, checkout) succeeds regardless.
type ActivityRecorder interface {
	// Append writes one record with a server-generated timestamp.
	Append(ctx context.Context, username, activity string) error
	// List returns records newest first, optionally filtered to usernames
	// beginning with usernamePrefix.
	List(ctx context.Context, usernamePrefix string) ([]domain.ActivityRecord, error)
}
