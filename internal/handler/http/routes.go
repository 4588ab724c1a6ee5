package http

import (
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the API router.
//
// The ACME challenge route is registered before the API middlewares so that
// it is served without route data, token extraction or multipart parsing.
// Every other request passes, in this order, through multipart
// preprocessing, initRoute, extractAPIToken and initCartDataInRoute.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))
	if h.sessions != nil {
		router.Use(h.sessions.Middleware)
	}

	router.HandleFunc("/.well-known/acme-challenge/{challengeKey}", h.acmeChallenge)

	router.Group(func(r chi.Router) {
		r.Use(h.parseMultipart)
		r.Use(h.initRoute)
		r.Use(h.extractAPIToken)
		r.Use(h.initCartDataInRoute)

		r.Route("/auth", h.authRoutes)
		r.Route("/accounts", h.accountRoutes)
		r.Route("/vendors", h.vendorRoutes)
		r.Route("/products", h.productRoutes)
		r.Route("/cart", h.cartRoutes)

		r.Get("/dashboardData", h.getDashboardData)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) authRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
	r.With(h.requireAPIToken).Get("/me", h.me)
}

func (h *Handler) accountRoutes(r chi.Router) {
	r.Use(h.requireAPIToken)
	r.Get("/me", h.me)
	r.Patch("/me", h.updateMe)
	r.With(h.loadProvidedAccount).Get("/{accountID}", h.getAccount)
}

func (h *Handler) vendorRoutes(r chi.Router) {
	r.Get("/", h.listVendors)
	r.With(h.requireAPIToken, h.requireRole(models.RoleVendor, models.RoleAdmin)).Post("/", h.createVendor)
	r.Get("/{vendorID}", h.getVendor)
	r.Get("/{vendorID}/products", h.listVendorProducts)
}

func (h *Handler) productRoutes(r chi.Router) {
	r.Get("/", h.listProducts)
	r.With(h.requireAPIToken, h.requireRole(models.RoleVendor, models.RoleAdmin)).Post("/", h.createProduct)
	r.With(h.loadSelectedProduct).Get("/{productID}", h.getProduct)
}

func (h *Handler) cartRoutes(r chi.Router) {
	r.Get("/", h.getCart)
	r.Delete("/", h.clearCart)
	r.Post("/items", h.addCartItem)
	r.Delete("/items/{productID}", h.removeCartItem)
}
