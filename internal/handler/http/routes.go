package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// gateway-owned endpoints, always public
	router.Group(func(r chi.Router) {
		r.Get("/api/config/info", h.getConfigInfo)
		r.Get("/api/config/health", h.getHealth)
		r.Get("/api/config/version", h.getServerVersion)
		r.Get("/api/config/test-rest-client", h.testRestClient)
	})

	// provider passthrough
	router.Group(func(r chi.Router) {
		if h.authEnabled {
			r.Use(h.auth)
		}
		r.Post("/api/lalamove/quotations", h.getQuotation)
		r.Post("/api/lalamove/orders", h.placeOrder)
		r.Get("/api/lalamove/orders/{orderID}", h.getOrder)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
