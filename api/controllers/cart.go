package controllers

import (
	"net/http"

	"github.com/davidmorales/storefront-backend/api/middleware"
	"github.com/davidmorales/storefront-backend/api/responses"
	"github.com/davidmorales/storefront-backend/api/validators"
	"github.com/davidmorales/storefront-backend/internal/cart"
	pkgerrors "github.com/davidmorales/storefront-backend/pkg/errors"
	"github.com/davidmorales/storefront-backend/pkg/logger"
)

// CartController serves the visitor cart endpoints. The cart is resolved from
// the session cookie on every request.
type CartController struct {
	store *cart.Store
	logg  *logger.Logger
}

// NewCartController builds the cart controller.
func NewCartController(store *cart.Store, logg *logger.Logger) *CartController {
	return &CartController{store: store, logg: logg}
}

type cartAddRequest struct {
	ProductID int  `json:"product_id" validate:"required"`
	Quantity  *int `json:"quantity"`
}

type cartRemoveRequest struct {
	ProductID int `json:"product_id" validate:"required"`
}

// Add puts a product into the session cart. Quantity defaults to 1 when
// omitted.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	sessionCart, err := c.sessionCart(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	var body cartAddRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	quantity := 1
	if body.Quantity != nil {
		quantity = *body.Quantity
	}

	if err := sessionCart.Add(r.Context(), body.ProductID, quantity); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	ctx := c.logg.WithField(r.Context(), "product_id", body.ProductID)
	c.logg.Info(ctx, "cart.item_added")
	responses.WriteSuccess(w, sessionCart.View(r.Context()))
}

// Remove drops a product line from the session cart.
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	sessionCart, err := c.sessionCart(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	var body cartRemoveRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	sessionCart.Remove(r.Context(), body.ProductID)
	responses.WriteSuccess(w, sessionCart.View(r.Context()))
}

// Fetch returns the session cart's current contents.
func (c *CartController) Fetch(w http.ResponseWriter, r *http.Request) {
	sessionCart, err := c.sessionCart(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, sessionCart.View(r.Context()))
}

func (c *CartController) sessionCart(r *http.Request) (*cart.Cart, error) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok || sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "missing session")
	}
	return c.store.Session(sessionID), nil
}
