package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shoplite/store-api/internal/core/domain"
	"github.com/shoplite/store-api/internal/core/ports"
)

// CatalogService exposes the product catalog to the transport layer.
type CatalogService struct {
	repo ports.CatalogRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

func (s *CatalogService) AddProduct(ctx context.Context, p domain.Product) error {
	if err := s.repo.Insert(ctx, &p); err != nil {
		return err
	}
	s.log.Info().Str("title", p.Title).Msg("product added")
	return nil
}

func (s *CatalogService) RemoveProduct(ctx context.Context, title string) error {
	if err := s.repo.DeleteByTitle(ctx, title); err != nil {
		return err
	}
	s.log.Info().Str("title", title).Msg("product removed")
	return nil
}
