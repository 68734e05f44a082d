package controllers

import (
	"net/http"

	"github.com/davidmorales/storefront-backend/api/responses"
	"github.com/davidmorales/storefront-backend/api/validators"
	"github.com/davidmorales/storefront-backend/internal/auth"
	"github.com/davidmorales/storefront-backend/pkg/logger"
)

// AuthController exposes the admin login endpoint.
type AuthController struct {
	svc  auth.Service
	logg *logger.Logger
}

// NewAuthController builds the auth controller.
func NewAuthController(svc auth.Service, logg *logger.Logger) *AuthController {
	return &AuthController{svc: svc, logg: logg}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges the admin credential for a bearer token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	result, err := c.svc.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	c.logg.Info(r.Context(), "admin.login")
	responses.WriteSuccess(w, result)
}
