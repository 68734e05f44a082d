package controllers

import (
	"net/http"

	"github.com/davidmorales/storefront-backend/api/responses"
)

// HealthController answers liveness and readiness probes.
type HealthController struct {
	env string
}

// NewHealthController builds the probe controller.
func NewHealthController(env string) *HealthController {
	return &HealthController{env: env}
}

// Live reports that the process is up.
func (c *HealthController) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Storefront-Env", c.env)
	responses.WriteSuccess(w, map[string]string{"status": "ok"})
}

// Ready reports that the service can take traffic. Everything is in-process,
// so readiness follows liveness.
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Storefront-Env", c.env)
	responses.WriteSuccess(w, map[string]string{"status": "ready"})
}
