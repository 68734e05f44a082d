package orders

import (
	"context"
	"testing"

	"github.com/davidmorales/storefront-backend/internal/cart"
	pkgerrors "github.com/davidmorales/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

func sampleItems() []cart.Line {
	return []cart.Line{
		{ProductID: 1, Name: "Mug", Price: decimal.NewFromFloat(10.00), Quantity: 3},
		{ProductID: 2, Name: "Plant", Price: decimal.NewFromFloat(9.99), Quantity: 1},
	}
}

func TestCreateAssignsIDsFrom1001(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ctx := context.Background()

	first, err := ledger.Create(ctx, sampleItems(), "Guest", "guest@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != 1001 {
		t.Fatalf("expected first order id 1001, got %d", first.ID)
	}

	second, err := ledger.Create(ctx, sampleItems(), "Guest", "guest@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != 1002 {
		t.Fatalf("expected second order id 1002, got %d", second.ID)
	}
}

func TestCreateRejectsEmptyItems(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	_, err := ledger.Create(context.Background(), nil, "Guest", "guest@example.com")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := len(ledger.List(context.Background())); got != 0 {
		t.Fatalf("expected no order persisted, got %d", got)
	}
}

func TestCreateFreezesTotalAndStatus(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	order, err := ledger.Create(context.Background(), sampleItems(), "Guest", "guest@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := decimal.NewFromFloat(39.99) // 3*10.00 + 1*9.99
	if !order.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, order.Total)
	}
	if order.Status != StatusPending {
		t.Fatalf("expected pending status, got %q", order.Status)
	}
	if order.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
}

func TestOrderItemsAreImmutableSnapshots(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ctx := context.Background()
	items := sampleItems()

	order, err := ledger.Create(ctx, items, "Guest", "guest@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the caller's slice or the returned copy must not leak into
	// the ledger's record.
	items[0].Quantity = 999
	order.Items[0].Quantity = 888

	stored := ledger.List(ctx)[0]
	if stored.Items[0].Quantity != 3 {
		t.Fatalf("expected stored quantity 3, got %d", stored.Items[0].Quantity)
	}
}

func TestRecentReturnsTailInCreationOrder(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := ledger.Create(ctx, sampleItems(), "Guest", "guest@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	recent := ledger.Recent(ctx, 2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(recent))
	}
	if recent[0].ID != 1004 || recent[1].ID != 1005 {
		t.Fatalf("expected orders 1004,1005 got %d,%d", recent[0].ID, recent[1].ID)
	}

	if got := ledger.Recent(ctx, 10); len(got) != 5 {
		t.Fatalf("expected all 5 orders when n exceeds ledger, got %d", len(got))
	}
	if got := ledger.Recent(ctx, 0); got != nil {
		t.Fatalf("expected nil for n=0, got %v", got)
	}
}

func TestUpdateStatusIsUnconditional(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ctx := context.Background()
	order, err := ledger.Create(ctx, sampleItems(), "Guest", "guest@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No forward-only enforcement: shipped and back to pending both succeed.
	if _, err := ledger.UpdateStatus(ctx, order.ID, "shipped"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := ledger.UpdateStatus(ctx, order.ID, "pending")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Status != "pending" {
		t.Fatalf("expected pending, got %q", back.Status)
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ctx := context.Background()

	_, err := ledger.UpdateStatus(ctx, 1001, "shipped")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	order, err := ledger.Create(ctx, sampleItems(), "Guest", "guest@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = ledger.UpdateStatus(ctx, order.ID, "  ")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
