package catalog

import (
	"context"
	"strings"
	"sync"

	pkgerrors "github.com/davidmorales/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Product is a sellable item in the storefront catalog.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	Featured    bool            `json:"featured"`
}

// CreateProductInput holds the payload to create a product. Zero values stand
// in for omitted fields: numeric fields default to 0, strings to empty,
// featured to false.
type CreateProductInput struct {
	Name        string
	Price       decimal.Decimal
	Category    string
	Image       string
	Stock       int
	Description string
	Featured    bool
}

// UpdateProductInput holds optional mutation values for a product. Nil fields
// keep their previous value.
type UpdateProductInput struct {
	Name        *string
	Price       *decimal.Decimal
	Category    *string
	Image       *string
	Stock       *int
	Description *string
	Featured    *bool
}

// Service exposes product catalog operations.
type Service interface {
	List(ctx context.Context) []Product
	Find(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, input CreateProductInput) (*Product, error)
	Update(ctx context.Context, id int, input UpdateProductInput) (*Product, error)
	Delete(ctx context.Context, id int) error
	AdjustStock(ctx context.Context, id int, delta int) error
}

// service keeps the catalog in memory for the life of the process. A single
// mutex guards the slice; concurrent stock edits are last-writer-wins.
type service struct {
	mu       sync.Mutex
	products []Product
}

// NewService constructs a catalog preloaded with the given seed products.
func NewService(seed []CreateProductInput) (Service, error) {
	s := &service{}
	for _, input := range seed {
		if _, err := s.Create(context.Background(), input); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *service) List(_ context.Context) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *service) Find(_ context.Context, id int) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (s *service) Create(_ context.Context, input CreateProductInput) (*Product, error) {
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	if input.Stock < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock must be non-negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := Product{
		ID:          s.nextIDLocked(),
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Category:    strings.TrimSpace(input.Category),
		Image:       input.Image,
		Stock:       input.Stock,
		Description: input.Description,
		Featured:    input.Featured,
	}
	s.products = append(s.products, product)

	created := product
	return &created, nil
}

func (s *service) Update(_ context.Context, id int, input UpdateProductInput) (*Product, error) {
	if input.Price != nil && input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock must be non-negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		applyUpdateToProduct(&s.products[i], input)
		updated := s.products[i]
		return &updated, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

// Delete removes the product if present. Deleting an unknown id succeeds;
// ids are never reused.
func (s *service) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	return nil
}

// AdjustStock applies delta to the product's stock, clamping at zero.
func (s *service) AdjustStock(_ context.Context, id int, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		next := s.products[i].Stock + delta
		if next < 0 {
			next = 0
		}
		s.products[i].Stock = next
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (s *service) nextIDLocked() int {
	next := 1
	for _, p := range s.products {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

func applyUpdateToProduct(product *Product, input UpdateProductInput) {
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}
}
