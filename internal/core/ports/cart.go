package ports

import (
	"context"

	"github.com/shoplite/store-api/internal/core/domain"
)

// CartStore holds every cart for the lifetime of the process, keyed by
// identity. State is in-memory only and lost on restart, matching the
// intended durability of carts. The store performs no I/O: all methods are
// fast, purely local, and safe for concurrent use. A cart conceptually exists
// for every identity; an unseen identity simply has an empty one.
type CartStore interface {
	// Items returns a copy of the identity's cart in insertion order.
	Items(identity string) []domain.CartEntry
	Append(identity string, entry domain.CartEntry)
	// RemoveFirst removes the first entry whose title matches
	// case-insensitively, leaving later duplicates in place. Returns
	// domain.ErrCartItemNotFound when nothing matches.
	RemoveFirst(identity, title string) error
	// Clear empties the identity's cart. Idempotent.
	Clear(identity string)
}

type CartService interface {
	Items(ctx context.Context, username string) ([]domain.CartEntry, error)
	// Add snapshots the catalog product with the given title into the cart.
	Add(ctx context.Context, username, title string) (*domain.CartEntry, error)
	Remove(ctx context.Context, username, title string) error
	Clear(ctx context.Context, username string) error
}
