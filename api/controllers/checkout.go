package controllers

import (
	"net/http"

	"github.com/davidmorales/storefront-backend/api/middleware"
	"github.com/davidmorales/storefront-backend/api/responses"
	"github.com/davidmorales/storefront-backend/internal/cart"
	"github.com/davidmorales/storefront-backend/internal/checkout"
	pkgerrors "github.com/davidmorales/storefront-backend/pkg/errors"
	"github.com/davidmorales/storefront-backend/pkg/logger"
)

// CheckoutController converts a session cart into an order.
type CheckoutController struct {
	store *cart.Store
	svc   checkout.Service
	logg  *logger.Logger
}

// NewCheckoutController builds the checkout controller.
func NewCheckoutController(store *cart.Store, svc checkout.Service, logg *logger.Logger) *CheckoutController {
	return &CheckoutController{store: store, svc: svc, logg: logg}
}

// Checkout places an order for the session cart.
func (c *CheckoutController) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok || sessionID == "" {
		responses.WriteError(r.Context(), c.logg, w, pkgerrors.New(pkgerrors.CodeInternal, "missing session"))
		return
	}

	order, err := c.svc.Checkout(r.Context(), c.store.Session(sessionID))
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	ctx := c.logg.WithFields(r.Context(), map[string]any{
		"order_id":    order.ID,
		"order_total": order.Total.String(),
	})
	c.logg.Info(ctx, "checkout.completed")
	responses.WriteSuccessStatus(w, http.StatusCreated, order)
}
