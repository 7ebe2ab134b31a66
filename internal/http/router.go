package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	Products *ProductHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Auth     *AuthHandler
	Reviews  *ReviewsHandler
	Toasts   *ToastHandler
}

func NewRouter(h Handlers, log *logrus.Logger, requestTimeout time.Duration) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(RecoverMiddleware(log))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		// The review stream outlives the request timeout, so it is
		// mounted outside the timed group.
		r.Get("/reviews/stream", h.Reviews.Stream)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(requestTimeout))

			r.Get("/products", h.Products.List)
			r.Get("/products/{product_id}", h.Products.Get)
			r.Get("/zones", h.Products.Zones)

			r.Get("/reviews", h.Reviews.List)
			r.Post("/reviews", h.Reviews.Add)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.Cart.Get)
				r.Delete("/", h.Cart.Clear)
				r.Post("/items", h.Cart.AddItem)
				r.Put("/items/{product_id}", h.Cart.UpdateQuantity)
				r.Delete("/items/{product_id}", h.Cart.RemoveItem)
				r.Get("/whatsapp", h.Cart.ShareURL)
			})

			r.Post("/checkout", h.Checkout.Submit)

			r.Route("/auth", func(r chi.Router) {
				r.Post("/login", h.Auth.Login)
				r.Post("/register", h.Auth.Register)
				r.Get("/me", h.Auth.Me)
				r.Put("/me", h.Auth.Update)
				r.Post("/logout", h.Auth.Logout)
			})

			r.Route("/toasts", func(r chi.Router) {
				r.Get("/", h.Toasts.List)
				r.Post("/", h.Toasts.Show)
				r.Delete("/{toast_id}", h.Toasts.Dismiss)
			})
		})
	})

	return r
}
