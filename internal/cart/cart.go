package cart

import (
	"context"
	"sync"

	"github.com/davidmorales/storefront-backend/internal/catalog"
	pkgerrors "github.com/davidmorales/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Line is one product entry in a visitor's cart. Name, price and image are
// snapshotted from the catalog at add time.
type Line struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// View is the read model for a cart: its lines, the recomputed total, and the
// number of distinct lines.
type View struct {
	Items []Line          `json:"items"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// ProductFinder resolves a product at add time.
type ProductFinder interface {
	Find(ctx context.Context, id int) (*catalog.Product, error)
}

// Cart holds one visitor's pending selection. It is owned by a single session
// and guarded by its own mutex.
type Cart struct {
	mu     sync.Mutex
	finder ProductFinder
	lines  []Line
}

func newCart(finder ProductFinder) *Cart {
	return &Cart{finder: finder}
}

// Add merges quantity into an existing line for the product or appends a new
// line with a snapshot of the product's display fields.
func (c *Cart) Add(ctx context.Context, productID, quantity int) error {
	if quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be a positive integer")
	}

	product, err := c.finder.Find(ctx, productID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity += quantity
			return nil
		}
	}

	c.lines = append(c.lines, Line{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
	})
	return nil
}

// Remove drops the line for the product if present. Removing an absent
// product is a no-op.
func (c *Cart) Remove(_ context.Context, productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
}

// View returns the current lines with the total recomputed from them.
func (c *Cart) View(_ context.Context) View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return viewOf(c.lines)
}

// Clear empties the cart.
func (c *Cart) Clear(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Drain runs fn with a snapshot of the cart's lines while holding the cart
// lock, and clears the cart only when fn succeeds. Checkout uses this so two
// concurrent checkouts of the same cart cannot both spend it.
func (c *Cart) Drain(fn func(lines []Line) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]Line, len(c.lines))
	copy(snapshot, c.lines)

	if err := fn(snapshot); err != nil {
		return err
	}
	c.lines = nil
	return nil
}

func viewOf(lines []Line) View {
	out := View{
		Items: make([]Line, len(lines)),
		Total: decimal.Zero,
		Count: len(lines),
	}
	copy(out.Items, lines)
	for _, line := range lines {
		out.Total = out.Total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return out
}
