package catalog

import (
	"context"
	"testing"

	pkgerrors "github.com/davidmorales/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

func newEmptyCatalog(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	svc := newEmptyCatalog(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateProductInput{Name: "Mug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("expected first id 1, got %d", first.ID)
	}

	second, err := svc.Create(ctx, CreateProductInput{Name: "Plant"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("expected second id 2, got %d", second.ID)
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	t.Parallel()

	svc := newEmptyCatalog(t)
	p, err := svc.Create(context.Background(), CreateProductInput{Name: "Mug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Price.IsZero() || p.Stock != 0 || p.Featured {
		t.Fatalf("expected zero defaults, got %+v", p)
	}
}

func TestCreateRejectsNegativeNumbers(t *testing.T) {
	t.Parallel()

	svc := newEmptyCatalog(t)
	price := decimal.NewFromInt(-1)

	_, err := svc.Create(context.Background(), CreateProductInput{Name: "Mug", Price: price})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateProductInput{Name: "Mug", Stock: -5})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFindReturnsNotFoundForUnknownID(t *testing.T) {
	t.Parallel()

	svc := newEmptyCatalog(t)
	_, err := svc.Find(context.Background(), 99)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateAppliesPartialFields(t *testing.T) {
	t.Parallel()

	svc := newEmptyCatalog(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, CreateProductInput{Name: "Mug", Price: decimal.NewFromFloat(14.50), Stock: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := "Travel Mug"
	updated, err := svc.Update(ctx, created.ID, UpdateProductInput{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Travel Mug" {
		t.Fatalf("expected name updated, got %q", updated.Name)
	}
	if !updated.Price.Equal(decimal.NewFromFloat(14.50)) || updated.Stock != 5 {
		t.Fatalf("expected unspecified fields to be preserved, got %+v", updated)
	}
}

func TestUpdateRejectsNegativeNumbers(t *testing.T) {
	t.Parallel()

	svc := newEmptyCatalog(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, CreateProductInput{Name: "Mug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := -3
	_, err = svc.Update(ctx, created.ID, UpdateProductInput{Stock: &bad})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	t.Parallel()

	svc := newEmptyCatalog(t)
	name := "Ghost"
	_, err := svc.Update(context.Background(), 42, UpdateProductInput{Name: &name})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	svc := newEmptyCatalog(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, CreateProductInput{Name: "Mug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("expected idempotent delete, got %v", err)
	}
	if err := svc.Delete(ctx, 12345); err != nil {
		t.Fatalf("expected delete of unknown id to succeed, got %v", err)
	}
	if got := len(svc.List(ctx)); got != 0 {
		t.Fatalf("expected empty catalog, got %d products", got)
	}
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	t.Parallel()

	svc := newEmptyCatalog(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, CreateProductInput{Name: "Mug", Stock: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.AdjustStock(ctx, created.ID, -3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := svc.Find(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Stock != 2 {
		t.Fatalf("expected stock 2, got %d", p.Stock)
	}

	if err := svc.AdjustStock(ctx, created.ID, -10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err = svc.Find(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Stock != 0 {
		t.Fatalf("expected stock clamped to 0, got %d", p.Stock)
	}
}

func TestAdjustStockUnknownIDReturnsNotFound(t *testing.T) {
	t.Parallel()

	svc := newEmptyCatalog(t)
	err := svc.AdjustStock(context.Background(), 7, -1)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	svc, err := NewService(DefaultSeed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	products := svc.List(context.Background())
	if len(products) != len(DefaultSeed()) {
		t.Fatalf("expected %d products, got %d", len(DefaultSeed()), len(products))
	}
	for i, p := range products {
		if p.ID != i+1 {
			t.Fatalf("expected insertion order ids, got %d at index %d", p.ID, i)
		}
	}
}
