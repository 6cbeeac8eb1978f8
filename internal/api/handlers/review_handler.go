package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
	"github.com/gregory-bot/telecurehospital/internal/domain/repositories"
)

// ReviewQueue defines the review case operations the handler depends on
type ReviewQueue interface {
	ListPending(ctx context.Context, filter repositories.ReviewCaseFilter) ([]*entities.ReviewCase, error)
	Resolve(ctx context.Context, id string) error
}

// ReviewHandler exposes the clinician review queue. A nil queue answers 503.
type ReviewHandler struct {
	queue ReviewQueue
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(queue ReviewQueue) *ReviewHandler {
	return &ReviewHandler{queue: queue}
}

// ListPending handles GET /api/triage/reviews
func (h *ReviewHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	if h.queue == nil {
		respondWithError(w, http.StatusServiceUnavailable, "review queue is disabled")
		return
	}

	query := r.URL.Query()
	filter := repositories.ReviewCaseFilter{
		Urgency: entities.Urgency(query.Get("urgency")),
	}

	var err error
	if filter.Limit, err = intParam(query.Get("limit")); err != nil {
		respondWithError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	if filter.Offset, err = intParam(query.Get("offset")); err != nil {
		respondWithError(w, http.StatusBadRequest, "offset must be an integer")
		return
	}

	cases, err := h.queue.ListPending(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err, "failed to list review cases")
		return
	}
	if cases == nil {
		cases = []*entities.ReviewCase{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"cases": cases,
		"count": len(cases),
	})
}

// Resolve handles POST /api/triage/reviews/{id}/resolve
func (h *ReviewHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if h.queue == nil {
		respondWithError(w, http.StatusServiceUnavailable, "review queue is disabled")
		return
	}

	if err := h.queue.Resolve(r.Context(), r.PathValue("id")); err != nil {
		respondWithAppError(w, err, "failed to resolve review case")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
