package checkout

import (
	"context"
	"fmt"

	"github.com/davidmorales/storefront-backend/internal/cart"
	"github.com/davidmorales/storefront-backend/internal/orders"
	pkgerrors "github.com/davidmorales/storefront-backend/pkg/errors"
)

// Placeholder identity stamped on every order; the storefront has no customer
// accounts.
const (
	guestCustomerName  = "Guest"
	guestCustomerEmail = "guest@storefront.local"
)

type stockAdjuster interface {
	AdjustStock(ctx context.Context, id int, delta int) error
}

type orderCreator interface {
	Create(ctx context.Context, items []cart.Line, customerName, customerEmail string) (*orders.Order, error)
}

// Service executes checkout orchestration.
type Service interface {
	Checkout(ctx context.Context, c *cart.Cart) (*orders.Order, error)
}

type service struct {
	catalog stockAdjuster
	ledger  orderCreator
}

// NewService builds the checkout coordinator.
func NewService(catalog stockAdjuster, ledger orderCreator) (Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("stock adjuster required")
	}
	if ledger == nil {
		return nil, fmt.Errorf("order creator required")
	}
	return &service{catalog: catalog, ledger: ledger}, nil
}

// Checkout turns the cart into a persisted order: it validates the cart is
// non-empty, clamp-decrements stock per line (skipping products deleted since
// they were added), records the order priced from the cart's own snapshots,
// and clears the cart. The whole sequence runs under the cart's lock so a
// cart can only be spent once.
func (s *service) Checkout(ctx context.Context, c *cart.Cart) (*orders.Order, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable")
	}

	var order *orders.Order
	err := c.Drain(func(lines []cart.Line) error {
		if len(lines) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		for _, line := range lines {
			if err := s.catalog.AdjustStock(ctx, line.ProductID, -line.Quantity); err != nil {
				// A product deleted after it was added to the cart is
				// sold from the snapshot with no stock to adjust.
				if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
					continue
				}
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "adjust stock")
			}
		}

		created, err := s.ledger.Create(ctx, lines, guestCustomerName, guestCustomerEmail)
		if err != nil {
			return err
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
