package routes

import (
	"net/http"

	"github.com/davidmorales/storefront-backend/api/controllers"
	"github.com/davidmorales/storefront-backend/api/middleware"
	"github.com/davidmorales/storefront-backend/internal/auth"
	"github.com/davidmorales/storefront-backend/internal/cart"
	"github.com/davidmorales/storefront-backend/internal/catalog"
	"github.com/davidmorales/storefront-backend/internal/checkout"
	"github.com/davidmorales/storefront-backend/internal/orders"
	pkgauth "github.com/davidmorales/storefront-backend/pkg/auth"
	"github.com/davidmorales/storefront-backend/pkg/config"
	"github.com/davidmorales/storefront-backend/pkg/logger"
	"github.com/davidmorales/storefront-backend/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries everything the router wires together.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	Catalog  catalog.Service
	Carts    *cart.Store
	Ledger   *orders.Ledger
	Checkout checkout.Service
	Auth     auth.Service
	Registry *prometheus.Registry
}

// New assembles the HTTP surface.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(d.Registry)

	r.Use(middleware.RequestID(d.Logger))
	r.Use(middleware.Recoverer(d.Logger))
	r.Use(middleware.CORS(d.Config.CORS))
	r.Use(middleware.Metrics(httpMetrics))
	r.Use(middleware.Logging(d.Logger))
	r.Use(middleware.Authenticate(d.Config.JWT, d.Logger))

	health := controllers.NewHealthController(d.Config.App.Env)
	authCtrl := controllers.NewAuthController(d.Auth, d.Logger)
	products := controllers.NewProductsController(d.Catalog, d.Logger)
	carts := controllers.NewCartController(d.Carts, d.Logger)
	checkoutCtrl := controllers.NewCheckoutController(d.Carts, d.Checkout, d.Logger)
	ordersCtrl := controllers.NewOrdersController(d.Ledger, d.Logger)

	r.Get("/health/live", health.Live)
	r.Get("/health/ready", health.Ready)

	if d.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	requireAdmin := middleware.RequireRole(pkgauth.RoleAdmin, d.Logger)
	withSession := middleware.Session(d.Logger, d.Config.App.IsProd())

	// Public storefront surface. Carts are bound to the session cookie.
	r.Group(func(r chi.Router) {
		r.Use(withSession)

		r.Get("/api/products", products.List)
		r.Get("/api/products/{id}", products.Get)

		r.Post("/api/cart/add", carts.Add)
		r.Post("/api/cart/remove", carts.Remove)
		r.Get("/api/cart", carts.Fetch)

		r.Post("/api/checkout", checkoutCtrl.Checkout)
	})

	r.Post("/api/admin/login", authCtrl.Login)

	// Admin dashboard surface, bearer token required.
	r.Group(func(r chi.Router) {
		r.Use(requireAdmin)

		r.Get("/admin/api/products", products.List)
		r.Post("/admin/api/products/add", products.Create)
		r.Put("/admin/api/products/update/{id}", products.Update)
		r.Delete("/admin/api/products/delete/{id}", products.Delete)

		r.Get("/api/orders", ordersCtrl.List)
		r.Get("/api/orders/recent", ordersCtrl.Recent)
		r.Put("/api/orders/{id}/status", ordersCtrl.UpdateStatus)
	})

	return r
}
