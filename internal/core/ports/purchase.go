package ports

import (
	"context"

	"github.com/shoplite/store-api/internal/core/domain"
)

type PurchaseRepository interface {
	Insert(ctx context.Context, p *domain.Purchase) error
	List(ctx context.Context) ([]domain.Purchase, error)
}

type PurchaseService interface {
	// Checkout persists the identity's current cart as a purchase and then
	// clears the cart. Fails with domain.ErrEmptyCart when there is nothing
	// to buy.
	Checkout(ctx context.Context, username string) (*domain.Purchase, error)
	List(ctx context.Context) ([]domain.Purchase, error)
}
