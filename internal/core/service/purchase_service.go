package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoplite/store-api/internal/api/metrics"
	"github.com/shoplite/store-api/internal/core/domain"
	"github.com/shoplite/store-api/internal/core/ports"
)

// PurchaseService turns the current cart into a durable purchase record.
type PurchaseService struct {
	repo     ports.PurchaseRepository
	store    ports.CartStore
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewPurchaseService(repo ports.PurchaseRepository, store ports.CartStore, activity ports.ActivityRecorder, log zerolog.Logger) *PurchaseService {
	return &PurchaseService{repo: repo, store: store, activity: activity, log: log}
}

// Checkout persists the identity's cart and clears it. The cart is cleared
// only after the purchase is durably stored; a storage failure leaves the
// cart intact so the client can retry.
func (s *PurchaseService) Checkout(ctx context.Context, username string) (*domain.Purchase, error) {
	items := s.store.Items(username)
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	total := 0.0
	for _, item := range items {
		total += item.Price
	}

	purchase := &domain.Purchase{
		Username: username,
		Items:    items,
		Total:    total,
		Datetime: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, purchase); err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("failed to save purchase")
		return nil, err
	}

	s.store.Clear(username)

	if err := s.activity.Append(ctx, username, "checkout"); err != nil {
		metrics.ActivityAppendFailuresTotal.Inc()
		s.log.Warn().Err(err).Str("username", username).Msg("activity append failed")
	}
	metrics.PurchasesTotal.Inc()
	s.log.Info().Str("username", username).Int("items", len(items)).Float64("total", total).Msg("checkout complete")

	return purchase, nil
}

func (s *PurchaseService) List(ctx context.Context) ([]domain.Purchase, error) {
	return s.repo.List(ctx)
}
