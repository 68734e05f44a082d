package controllers

import (
	"net/http"
	"strconv"

	"github.com/davidmorales/storefront-backend/api/responses"
	"github.com/davidmorales/storefront-backend/api/validators"
	"github.com/davidmorales/storefront-backend/internal/catalog"
	pkgerrors "github.com/davidmorales/storefront-backend/pkg/errors"
	"github.com/davidmorales/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// ProductsController serves the public catalog and the admin CRUD surface.
type ProductsController struct {
	catalog catalog.Service
	logg    *logger.Logger
}

// NewProductsController builds the products controller.
func NewProductsController(svc catalog.Service, logg *logger.Logger) *ProductsController {
	return &ProductsController{catalog: svc, logg: logg}
}

type createProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category"`
	Image       string           `json:"image"`
	Stock       *int             `json:"stock"`
	Description string           `json:"description"`
	Featured    bool             `json:"featured"`
}

type updateProductRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Image       *string          `json:"image"`
	Stock       *int             `json:"stock"`
	Description *string          `json:"description"`
	Featured    *bool            `json:"featured"`
}

// List returns every product. Shared by the public storefront and the admin
// dashboard.
func (c *ProductsController) List(w http.ResponseWriter, r *http.Request) {
	responses.WriteSuccess(w, c.catalog.List(r.Context()))
}

// Get returns a single product by id.
func (c *ProductsController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	product, err := c.catalog.Find(r.Context(), id)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, product)
}

// Create adds a product to the catalog.
func (c *ProductsController) Create(w http.ResponseWriter, r *http.Request) {
	var body createProductRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	input := catalog.CreateProductInput{
		Name:        body.Name,
		Category:    body.Category,
		Image:       body.Image,
		Description: body.Description,
		Featured:    body.Featured,
	}
	if body.Price != nil {
		input.Price = *body.Price
	}
	if body.Stock != nil {
		input.Stock = *body.Stock
	}

	product, err := c.catalog.Create(r.Context(), input)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	ctx := c.logg.WithField(r.Context(), "product_id", product.ID)
	c.logg.Info(ctx, "product.created")
	responses.WriteSuccessStatus(w, http.StatusCreated, product)
}

// Update applies a partial mutation to a product.
func (c *ProductsController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	var body updateProductRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	product, err := c.catalog.Update(r.Context(), id, catalog.UpdateProductInput{
		Name:        body.Name,
		Price:       body.Price,
		Category:    body.Category,
		Image:       body.Image,
		Stock:       body.Stock,
		Description: body.Description,
		Featured:    body.Featured,
	})
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	ctx := c.logg.WithField(r.Context(), "product_id", product.ID)
	c.logg.Info(ctx, "product.updated")
	responses.WriteSuccess(w, product)
}

// Delete removes a product. Unknown ids succeed so retries are harmless.
func (c *ProductsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	if err := c.catalog.Delete(r.Context(), id); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	ctx := c.logg.WithField(r.Context(), "product_id", id)
	c.logg.Info(ctx, "product.deleted")
	responses.WriteSuccess(w, map[string]int{"id": id})
}

func productID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "product id must be an integer")
	}
	return id, nil
}
