package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/razoraze123/gnamgnam/internal/toast"
)

type ToastHandler struct {
	toasts *toast.Manager
}

func NewToastHandler(toasts *toast.Manager) *ToastHandler {
	return &ToastHandler{toasts: toasts}
}

type ShowToastRequestDTO struct {
	Message  string         `json:"message"`
	Severity toast.Severity `json:"type"`
}

func (h *ToastHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.toasts.List(getSessionID(r.Context())))
}

func (h *ToastHandler) Show(w http.ResponseWriter, r *http.Request) {
	var req ShowToastRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "missing_message", "message is required")
		return
	}

	shown := h.toasts.Show(getSessionID(r.Context()), req.Message, req.Severity)
	respondJSON(w, http.StatusCreated, shown)
}

func (h *ToastHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.toasts.Dismiss(getSessionID(r.Context()), chi.URLParam(r, "toast_id"))
	w.WriteHeader(http.StatusNoContent)
}
