package routes

import (
	"net/http"

	"github.com/gregory-bot/telecurehospital/internal/api/handlers"
	"github.com/gregory-bot/telecurehospital/internal/api/middleware"
	"github.com/gregory-bot/telecurehospital/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	triageHandler *handlers.TriageHandler
	reviewHandler *handlers.ReviewHandler

	allowedOrigins []string
	metrics        *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	triageHandler *handlers.TriageHandler,
	reviewHandler *handlers.ReviewHandler,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		triageHandler:  triageHandler,
		reviewHandler:  reviewHandler,
		allowedOrigins: allowedOrigins,
		metrics:        metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Triage endpoints
	r.mux.HandleFunc("POST /api/triage/analyze", r.triageHandler.Analyze)
	r.mux.HandleFunc("GET /api/triage/vocabulary", r.triageHandler.GetVocabulary)
	r.mux.HandleFunc("GET /api/triage/conditions/{name}/fees", r.triageHandler.GetConditionFees)

	// Review queue endpoints answer 503 while the queue is disabled
	r.mux.HandleFunc("GET /api/triage/reviews", r.reviewHandler.ListPending)
	r.mux.HandleFunc("POST /api/triage/reviews/{id}/resolve", r.reviewHandler.Resolve)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS is outermost so preflight answers never reach the handlers.
	var handler http.Handler = r.mux
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ResponseOptimization(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
