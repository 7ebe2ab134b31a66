package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/razoraze123/gnamgnam/internal/cart"
	"github.com/razoraze123/gnamgnam/internal/catalog"
	"github.com/razoraze123/gnamgnam/internal/checkout"
	"github.com/razoraze123/gnamgnam/internal/domain"
	"github.com/razoraze123/gnamgnam/internal/pricing"
)

type CartHandler struct {
	carts    *cart.Service
	products *catalog.ProductService
	checkout *checkout.Service
}

func NewCartHandler(carts *cart.Service, products *catalog.ProductService, checkoutSvc *checkout.Service) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
		checkout: checkoutSvc,
	}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int64 `json:"quantity"`
}

// CartDTO carries the lines plus the derived reads every cart view
// needs.
type CartDTO struct {
	Lines     []domain.CartLine `json:"lines"`
	Subtotal  int64             `json:"total"`
	ItemCount int64             `json:"item_count"`
}

func toCartDTO(c *domain.Cart) CartDTO {
	lines := c.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return CartDTO{
		Lines:     lines,
		Subtotal:  pricing.Subtotal(c.Lines),
		ItemCount: c.ItemCount(),
	}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.carts.Get(r.Context(), getSessionID(r.Context()))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "could not load cart")
		return
	}
	respondJSON(w, http.StatusOK, toCartDTO(c))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, err := h.products.Get(r.Context(), req.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable",
			"Impossible de charger les produits. Veuillez réessayer.")
		return
	}

	c, err := h.carts.AddItem(r.Context(), getSessionID(r.Context()), *product)
	if errors.Is(err, cart.ErrOutOfStock) || errors.Is(err, cart.ErrInsufficientStock) {
		respondError(w, http.StatusConflict, "out_of_stock", err.Error())
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "could not update cart")
		return
	}

	respondJSON(w, http.StatusCreated, toCartDTO(c))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	c, err := h.carts.SetQuantity(r.Context(), getSessionID(r.Context()), productID, req.Quantity)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "could not update cart")
		return
	}

	respondJSON(w, http.StatusOK, toCartDTO(c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	c, err := h.carts.RemoveItem(r.Context(), getSessionID(r.Context()), productID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "could not update cart")
		return
	}

	respondJSON(w, http.StatusOK, toCartDTO(c))
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Clear(r.Context(), getSessionID(r.Context())); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "could not clear cart")
		return
	}
	respondJSON(w, http.StatusOK, toCartDTO(&domain.Cart{}))
}

// ShareURL returns the pre-checkout WhatsApp link for the current cart.
func (h *CartHandler) ShareURL(w http.ResponseWriter, r *http.Request) {
	url, err := h.checkout.CartShareURL(r.Context(), getSessionID(r.Context()))
	if errors.Is(err, checkout.ErrEmptyCart) {
		respondError(w, http.StatusConflict, "empty_cart", "Votre panier est vide")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "could not build share link")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"whatsapp_url": url})
}
