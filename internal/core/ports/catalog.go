package ports

import (
	"context"

	"github.com/shoplite/store-api/internal/core/domain"
)

// CatalogRepository is the product catalog collaborator.
type CatalogRepository interface {
	// FindByTitle performs a case-insensitive exact title match and returns
	// domain.ErrProductNotFound when no product matches.
	FindByTitle(ctx context.Context, title string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	// Search returns products whose title or description contains query,
	// case-insensitively.
	Search(ctx context.Context, query string) ([]domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) error
	DeleteByTitle(ctx context.Context, title string) error
}

type CatalogService interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	AddProduct(ctx context.Context, p domain.Product) error
	RemoveProduct(ctx context.Context, title string) error
}
