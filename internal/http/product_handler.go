package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/razoraze123/gnamgnam/internal/catalog"
	"github.com/razoraze123/gnamgnam/internal/domain"
	"github.com/razoraze123/gnamgnam/internal/pricing"
)

type ProductHandler struct {
	products *catalog.ProductService
}

func NewProductHandler(products *catalog.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// ProductDTO decorates a product with the stock advisories the shop
// page shows. Low stock never blocks adding to cart.
type ProductDTO struct {
	domain.Product
	OutOfStock bool `json:"rupture_stock"`
	LowStock   bool `json:"stock_limite"`
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		Product:    p,
		OutOfStock: p.OutOfStock(),
		LowStock:   p.LowStock(),
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	products, err := h.products.List(r.Context(), limit)
	if err != nil {
		// Retryable page-level failure: the client shows an error state
		// with a retry action.
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable",
			"Impossible de charger les produits. Veuillez réessayer.")
		return
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}
	respondJSON(w, http.StatusOK, dtos)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "product_id")

	product, err := h.products.Get(r.Context(), id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable",
			"Impossible de charger les produits. Veuillez réessayer.")
		return
	}

	respondJSON(w, http.StatusOK, toProductDTO(*product))
}

// Zones serves the static delivery zone table.
func (h *ProductHandler) Zones(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, pricing.Zones())
}
