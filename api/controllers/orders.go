package controllers

import (
	"net/http"
	"strconv"

	"github.com/davidmorales/storefront-backend/api/responses"
	"github.com/davidmorales/storefront-backend/api/validators"
	"github.com/davidmorales/storefront-backend/internal/orders"
	pkgerrors "github.com/davidmorales/storefront-backend/pkg/errors"
	"github.com/davidmorales/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const defaultRecentOrders = 5

// OrdersController serves the admin order views and status updates.
type OrdersController struct {
	ledger *orders.Ledger
	logg   *logger.Logger
}

// NewOrdersController builds the orders controller.
func NewOrdersController(ledger *orders.Ledger, logg *logger.Logger) *OrdersController {
	return &OrdersController{ledger: ledger, logg: logg}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// List returns every order in creation order.
func (c *OrdersController) List(w http.ResponseWriter, r *http.Request) {
	responses.WriteSuccess(w, c.ledger.List(r.Context()))
}

// Recent returns the latest n orders; n defaults to 5.
func (c *OrdersController) Recent(w http.ResponseWriter, r *http.Request) {
	n := defaultRecentOrders
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			responses.WriteError(r.Context(), c.logg, w, pkgerrors.New(pkgerrors.CodeValidation, "n must be a positive integer"))
			return
		}
		n = parsed
	}

	recent := c.ledger.Recent(r.Context(), n)
	if recent == nil {
		recent = []orders.Order{}
	}
	responses.WriteSuccess(w, recent)
}

// UpdateStatus overwrites an order's status.
func (c *OrdersController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, pkgerrors.New(pkgerrors.CodeValidation, "order id must be an integer"))
		return
	}

	var body updateStatusRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	order, err := c.ledger.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	ctx := c.logg.WithFields(r.Context(), map[string]any{
		"order_id":     order.ID,
		"order_status": order.Status,
	})
	c.logg.Info(ctx, "order.status_updated")
	responses.WriteSuccess(w, order)
}
