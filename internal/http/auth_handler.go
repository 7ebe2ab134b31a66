package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/razoraze123/gnamgnam/internal/catalog"
	"github.com/razoraze123/gnamgnam/internal/checkout"
	"github.com/razoraze123/gnamgnam/internal/identity"
)

type AuthHandler struct {
	identities *identity.Service
}

func NewAuthHandler(identities *identity.Service) *AuthHandler {
	return &AuthHandler{identities: identities}
}

type LoginRequestDTO struct {
	Phone string `json:"telephone"`
}

type RegisterRequestDTO struct {
	Phone     string `json:"telephone"`
	FirstName string `json:"prenom"`
	LastName  string `json:"nom"`
}

type UpdateCustomerRequestDTO struct {
	FirstName        *string `json:"prenom"`
	LastName         *string `json:"nom"`
	PreferredZone    *string `json:"quartier_prefere"`
	PreferredAddress *string `json:"adresse_details"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !checkout.ValidPhone(req.Phone) {
		respondError(w, http.StatusBadRequest, "invalid_phone", "Numéro invalide")
		return
	}

	customer, err := h.identities.Login(r.Context(), getSessionID(r.Context()), req.Phone)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "store_unavailable", "login failed, please retry")
		return
	}
	if customer == nil {
		// Defined negative result: the client offers registration.
		respondError(w, http.StatusNotFound, "unknown_phone", "Aucun compte pour ce numéro")
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !checkout.ValidPhone(req.Phone) {
		respondError(w, http.StatusBadRequest, "invalid_phone", "Numéro invalide")
		return
	}

	firstName := checkout.Sanitize(req.FirstName)
	lastName := checkout.Sanitize(req.LastName)
	if firstName == "" || lastName == "" {
		respondError(w, http.StatusBadRequest, "missing_name", "Prénom et nom requis")
		return
	}

	customer, err := h.identities.Register(r.Context(), getSessionID(r.Context()), req.Phone, firstName, lastName)
	if errors.Is(err, identity.ErrPhoneTaken) {
		respondError(w, http.StatusConflict, "phone_taken", "Ce numéro est déjà enregistré")
		return
	}
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "store_unavailable", "registration failed, please retry")
		return
	}

	respondJSON(w, http.StatusCreated, customer)
}

// Me returns the identified customer so the client can prefill the
// checkout form, or 204 when the session is anonymous.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	customer, err := h.identities.Current(r.Context(), getSessionID(r.Context()))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "could not load identity")
		return
	}
	if customer == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *AuthHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCustomerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	err := h.identities.Update(r.Context(), getSessionID(r.Context()), catalog.UpdateCustomerParams{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		PreferredZone:    req.PreferredZone,
		PreferredAddress: req.PreferredAddress,
	})
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "store_unavailable", "update failed, please retry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.identities.Logout(r.Context(), getSessionID(r.Context())); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
