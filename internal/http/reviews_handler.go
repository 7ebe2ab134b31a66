package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/razoraze123/gnamgnam/internal/checkout"
	"github.com/razoraze123/gnamgnam/internal/domain"
	"github.com/razoraze123/gnamgnam/internal/reviews"
)

type ReviewsHandler struct {
	reviews *reviews.Service
}

func NewReviewsHandler(reviewsSvc *reviews.Service) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviewsSvc}
}

type ReviewsPageDTO struct {
	Reviews []domain.Review `json:"avis"`
	Stats   reviews.Stats   `json:"stats"`
}

type AddReviewRequestDTO struct {
	Name    string `json:"nom"`
	Rating  int    `json:"note"`
	Comment string `json:"commentaire"`
}

func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	list, err := h.reviews.List(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable",
			"Impossible de charger les avis. Veuillez réessayer.")
		return
	}
	if list == nil {
		list = []domain.Review{}
	}

	respondJSON(w, http.StatusOK, ReviewsPageDTO{
		Reviews: list,
		Stats:   h.reviews.StatsFor(list),
	})
}

func (h *ReviewsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	name := checkout.Sanitize(req.Name)
	comment := checkout.Sanitize(req.Comment)
	if name == "" {
		respondError(w, http.StatusBadRequest, "missing_name", "Nom requis")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		respondError(w, http.StatusBadRequest, "invalid_rating", "note must be between 1 and 5")
		return
	}

	review := &domain.Review{Name: name, Rating: req.Rating, Comment: comment}
	if err := h.reviews.Add(r.Context(), review); err != nil {
		respondError(w, http.StatusServiceUnavailable, "store_unavailable", "could not save review")
		return
	}

	respondJSON(w, http.StatusCreated, review)
}

// Stream pushes newly inserted reviews over server-sent events for the
// lifetime of the page view. The subscription is torn down when the
// client disconnects.
func (h *ReviewsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "streaming_unsupported", "streaming not supported")
		return
	}

	sub, err := h.reviews.Subscribe(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "store_unavailable", "could not open review stream")
		return
	}
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case review, ok := <-sub.C:
			if !ok {
				return
			}
			payload, err := json.Marshal(review)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: review\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
