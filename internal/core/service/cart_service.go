package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shoplite/store-api/internal/api/metrics"
	"github.com/shoplite/store-api/internal/core/domain"
	"github.com/shoplite/store-api/internal/core/ports"
)

// CartService performs cart operations for an authenticated identity. The
// catalog lookup and the activity append are collaborator I/O and happen
// strictly outside the store: the store's per-identity locks are never held
// across them.
type CartService struct {
	catalog  ports.CatalogRepository
	store    ports.CartStore
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewCartService(catalog ports.CatalogRepository, store ports.CartStore, activity ports.ActivityRecorder, log zerolog.Logger) *CartService {
	return &CartService{catalog: catalog, store: store, activity: activity, log: log}
}

// Items returns the identity's cart. Never fails; an unseen identity has an
// empty cart.
func (s *CartService) Items(_ context.Context, username string) ([]domain.CartEntry, error) {
	return s.store.Items(username), nil
}

// Add looks up the product by case-insensitive exact title and appends a
// snapshot copy to the cart. The activity record is best-effort: a failed
// append never fails the add.
func (s *CartService) Add(ctx context.Context, username, title string) (*domain.CartEntry, error) {
	product, err := s.catalog.FindByTitle(ctx, title)
	if err != nil {
		if err == domain.ErrProductNotFound {
			metrics.CartOpsTotal.WithLabelValues("add", "not_found").Inc()
		}
		return nil, err
	}

	entry := domain.Snapshot(product)
	s.store.Append(username, entry)

	s.recordActivity(ctx, username, "add-to-cart: "+product.Title)
	metrics.CartOpsTotal.WithLabelValues("add", "success").Inc()
	s.log.Info().Str("username", username).Str("title", product.Title).Msg("added to cart")

	return &entry, nil
}

// Remove drops the first entry whose title matches case-insensitively.
func (s *CartService) Remove(_ context.Context, username, title string) error {
	if err := s.store.RemoveFirst(username, title); err != nil {
		metrics.CartOpsTotal.WithLabelValues("remove", "not_found").Inc()
		return err
	}
	metrics.CartOpsTotal.WithLabelValues("remove", "success").Inc()
	s.log.Info().Str("username", username).Str("title", title).Msg("removed from cart")
	return nil
}

// Clear empties the identity's cart. Idempotent; never fails.
func (s *CartService) Clear(_ context.Context, username string) error {
	s.store.Clear(username)
	metrics.CartOpsTotal.WithLabelValues("clear", "success").Inc()
	return nil
}

func (s *CartService) recordActivity(ctx context.Context, username, activity string) {
	if err := s.activity.Append(ctx, username, activity); err != nil {
		metrics.ActivityAppendFailuresTotal.Inc()
		s.log.Warn().Err(err).Str("username", username).Str("activity", activity).Msg("activity append failed")
	}
}
