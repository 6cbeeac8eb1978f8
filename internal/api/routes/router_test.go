package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregory-bot/telecurehospital/internal/api/handlers"
	"github.com/gregory-bot/telecurehospital/internal/api/routes"
	"github.com/gregory-bot/telecurehospital/internal/application/services"
	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
	"github.com/gregory-bot/telecurehospital/internal/domain/vocabulary"
	"github.com/gregory-bot/telecurehospital/internal/triage"
)

type uniformModel struct {
	outputs int
}

func (m uniformModel) Predict([]float64) ([]float64, error) {
	p := make([]float64, m.outputs)
	for i := range p {
		p[i] = 1 / float64(m.outputs)
	}
	return p, nil
}

func newServer(t *testing.T) http.Handler {
	t.Helper()
	v := vocabulary.MustLoad()
	analyzer := triage.NewAnalyzer(v, triage.WithModelFactory(
		func(ctx context.Context, inputs, outputs int) (triage.Model, error) {
			return uniformModel{outputs: outputs}, nil
		},
	))
	analysis := services.NewAnalysisService(analyzer, services.AnalysisServiceConfig{MaxTextLength: 2000})

	router := routes.NewRouter(
		handlers.NewTriageHandler(analysis, v),
		handlers.NewReviewHandler(nil),
		nil,
		nil,
	)
	return router.SetupRoutes()
}

func TestRouter_Health(t *testing.T) {
	w := httptest.NewRecorder()
	newServer(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouter_AnalyzeEndToEnd(t *testing.T) {
	body := `{"symptoms":"I have a fever and a persistent cough with chest pain"}`
	w := httptest.NewRecorder()
	newServer(t).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/triage/analyze", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var record entities.AnalysisRecord
	require.NoError(t, json.NewDecoder(w.Body).Decode(&record))
	assert.Equal(t, "Common Cold", record.Result.Condition)
	assert.Equal(t, entities.UrgencyHigh, record.Result.Urgency)
	assert.InDelta(t, 2.2, record.Severity, 1e-9)
	assert.Contains(t, record.Result.Recommendations, "Emergency consultation fee: KSH800")
}

func TestRouter_AnalyzeRejectsOverlongText(t *testing.T) {
	payload, err := json.Marshal(map[string]string{"symptoms": strings.Repeat("a", 2001)})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	newServer(t).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/triage/analyze", strings.NewReader(string(payload))))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_ConditionFeesWithEscapedNames(t *testing.T) {
	server := newServer(t)

	for _, target := range []string{
		"/api/triage/conditions/Common%20Cold/fees",
		"/api/triage/conditions/HIV%2FAIDS/fees",
	} {
		w := httptest.NewRecorder()
		server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, w.Code, target)
	}

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/triage/conditions/Scurvy/fees", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ReviewsDisabled(t *testing.T) {
	w := httptest.NewRecorder()
	newServer(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/triage/reviews", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	newServer(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/triage/analyze", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
