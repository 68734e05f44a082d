package orders

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/davidmorales/storefront-backend/internal/cart"
	pkgerrors "github.com/davidmorales/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// StatusPending is the status every order starts in. Further transitions are
// free-form admin labels; the ledger does not restrict them.
const StatusPending = "pending"

// firstOrderID keeps the order numbering space apart from product ids.
const firstOrderID = 1001

// Order is the historical record of a completed checkout. Items and total are
// frozen at creation; only status may change afterwards.
type Order struct {
	ID            int             `json:"id"`
	Items         []cart.Line     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
}

// Ledger is the append-only in-memory order collection. Orders are never
// deleted for the life of the process.
type Ledger struct {
	mu     sync.Mutex
	orders []Order
	now    func() time.Time
}

// NewLedger builds an empty order ledger.
func NewLedger() *Ledger {
	return &Ledger{now: func() time.Time { return time.Now().UTC() }}
}

// Create appends a new pending order built from the given line snapshots.
func (l *Ledger) Create(_ context.Context, items []cart.Line, customerName, customerEmail string) (*Order, error) {
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}

	frozen := make([]cart.Line, len(items))
	copy(frozen, items)

	total := decimal.Zero
	for _, line := range frozen {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	order := Order{
		ID:            l.nextIDLocked(),
		Items:         frozen,
		Total:         total,
		Status:        StatusPending,
		CreatedAt:     l.now(),
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
	}
	l.orders = append(l.orders, order)

	created := cloneOrder(order)
	return &created, nil
}

// List returns every order in creation order.
func (l *Ledger) List(_ context.Context) []Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Order, len(l.orders))
	for i, order := range l.orders {
		out[i] = cloneOrder(order)
	}
	return out
}

// Recent returns the last n orders by creation order.
func (l *Ledger) Recent(_ context.Context, n int) []Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 {
		return nil
	}
	start := len(l.orders) - n
	if start < 0 {
		start = 0
	}
	out := make([]Order, 0, len(l.orders)-start)
	for _, order := range l.orders[start:] {
		out = append(out, cloneOrder(order))
	}
	return out
}

// UpdateStatus overwrites the order's status unconditionally; any transition
// is allowed, including moving a cancelled order back to pending.
func (l *Ledger) UpdateStatus(_ context.Context, id int, status string) (*Order, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID != id {
			continue
		}
		l.orders[i].Status = status
		updated := cloneOrder(l.orders[i])
		return &updated, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func (l *Ledger) nextIDLocked() int {
	next := firstOrderID
	for _, order := range l.orders {
		if order.ID >= next {
			next = order.ID + 1
		}
	}
	return next
}

func cloneOrder(order Order) Order {
	items := make([]cart.Line, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	return order
}
