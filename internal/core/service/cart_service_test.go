package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shoplite/store-api/internal/core/domain"
	"github.com/shoplite/store-api/internal/infrastructure/memory"
)

type stubCatalog struct {
	products map[string]*domain.Product
}

func newStubCatalog(products ...domain.Product) *stubCatalog {
	c := &stubCatalog{products: make(map[string]*domain.Product)}
	for i := range products {
		c.products[products[i].Title] = &products[i]
	}
	return c
}

func (c *stubCatalog) FindByTitle(_ context.Context, title string) (*domain.Product, error) {
	p, ok := c.products[title]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (c *stubCatalog) List(_ context.Context) ([]domain.Product, error)           { return nil, nil }
func (c *stubCatalog) Search(_ context.Context, _ string) ([]domain.Product, error) { return nil, nil }
func (c *stubCatalog) Insert(_ context.Context, _ *domain.Product) error          { return nil }
func (c *stubCatalog) DeleteByTitle(_ context.Context, _ string) error            { return nil }

func TestCartService_Add_SnapshotsProduct(t *testing.T) {
	catalog := newStubCatalog(domain.Product{
		Title:       "Mechanical Keyboard",
		Description: "Tenkeyless, brown switches",
		Price:       129.99,
		Image:       "/img/keyboard.png",
	})
	store := memory.NewCartStore()
	recorder := &stubRecorder{}
	svc := NewCartService(catalog, store, recorder, zerolog.Nop())

	entry, err := svc.Add(context.Background(), "alice", "Mechanical Keyboard")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	want := domain.CartEntry{
		Title:       "Mechanical Keyboard",
		Description: "Tenkeyless, brown switches",
		Price:       129.99,
		Image:       "/img/keyboard.png",
	}
	if *entry != want {
		t.Errorf("entry = %+v, want %+v", *entry, want)
	}

	items, _ := svc.Items(context.Background(), "alice")
	if len(items) != 1 || items[0] != want {
		t.Errorf("cart = %+v, want one snapshot entry", items)
	}

	if len(recorder.activities) != 1 || recorder.activities[0] != "add-to-cart: Mechanical Keyboard" {
		t.Errorf("activities = %v, want [add-to-cart: Mechanical Keyboard]", recorder.activities)
	}
}

func TestCartService_Add_UnknownProductLeavesCartUnchanged(t *testing.T) {
	store := memory.NewCartStore()
	svc := NewCartService(newStubCatalog(), store, &stubRecorder{}, zerolog.Nop())

	_, err := svc.Add(context.Background(), "alice", "Nonexistent")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
	if items, _ := svc.Items(context.Background(), "alice"); len(items) != 0 {
		t.Errorf("cart = %+v, want empty", items)
	}
}

func TestCartService_Add_ActivityFailureIsNonFatal(t *testing.T) {
	catalog := newStubCatalog(domain.Product{Title: "Mug", Price: 9.5})
	store := memory.NewCartStore()
	recorder := &stubRecorder{err: errors.New("sink down")}
	svc := NewCartService(catalog, store, recorder, zerolog.Nop())

	if _, err := svc.Add(context.Background(), "alice", "Mug"); err != nil {
		t.Fatalf("add must succeed when the activity sink is down, got %v", err)
	}
	if items, _ := svc.Items(context.Background(), "alice"); len(items) != 1 {
		t.Errorf("cart = %+v, want one entry", items)
	}
}

func TestCartService_RemoveRestoresPreAddState(t *testing.T) {
	catalog := newStubCatalog(domain.Product{Title: "Mug", Price: 9.5})
	store := memory.NewCartStore()
	svc := NewCartService(catalog, store, &stubRecorder{}, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Add(ctx, "alice", "Mug"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := svc.Remove(ctx, "alice", "mug"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if items, _ := svc.Items(ctx, "alice"); len(items) != 0 {
		t.Errorf("cart = %+v, want empty after remove", items)
	}

	if err := svc.Remove(ctx, "alice", "mug"); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Errorf("second remove: err = %v, want ErrCartItemNotFound", err)
	}
}

func TestCartService_Clear(t *testing.T) {
	catalog := newStubCatalog(domain.Product{Title: "Mug", Price: 9.5})
	store := memory.NewCartStore()
	svc := NewCartService(catalog, store, &stubRecorder{}, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Add(ctx, "alice", "Mug"); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if err := svc.Clear(ctx, "alice"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if items, _ := svc.Items(ctx, "alice"); len(items) != 0 {
		t.Errorf("cart = %+v, want empty after clear", items)
	}

	// Clearing an already-empty cart is fine.
	if err := svc.Clear(ctx, "alice"); err != nil {
		t.Fatalf("Clear (empty): %v", err)
	}
}
