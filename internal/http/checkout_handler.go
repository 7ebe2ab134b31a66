package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/razoraze123/gnamgnam/internal/checkout"
)

type CheckoutHandler struct {
	checkout *checkout.Service
}

func NewCheckoutHandler(checkoutSvc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkoutSvc}
}

type checkoutErrorsDTO struct {
	Errors checkout.FieldErrors `json:"errors"`
}

func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form checkout.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !form.DeliveryMode.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_delivery_mode", "mode_livraison must be livraison or retrait")
		return
	}
	if !form.PaymentMethod.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_payment_method", "moyen_paiement must be especes or nita")
		return
	}

	result, fieldErrs, err := h.checkout.Submit(r.Context(), getSessionID(r.Context()), form)
	if errors.Is(err, checkout.ErrEmptyCart) {
		respondError(w, http.StatusConflict, "empty_cart", "Votre panier est vide")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "checkout failed")
		return
	}
	if !fieldErrs.Valid() {
		respondJSON(w, http.StatusUnprocessableEntity, checkoutErrorsDTO{Errors: fieldErrs})
		return
	}

	respondJSON(w, http.StatusOK, result)
}
