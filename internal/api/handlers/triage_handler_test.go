package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregory-bot/telecurehospital/internal/api/handlers"
	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
	"github.com/gregory-bot/telecurehospital/internal/domain/vocabulary"
	apperrors "github.com/gregory-bot/telecurehospital/pkg/errors"
)

type stubAnalysisService struct {
	texts  []string
	record *entities.AnalysisRecord
	err    error
}

func (s *stubAnalysisService) Analyze(ctx context.Context, symptomText string) (*entities.AnalysisRecord, error) {
	s.texts = append(s.texts, symptomText)
	if s.err != nil {
		return nil, s.err
	}
	return s.record, nil
}

func sampleRecord() *entities.AnalysisRecord {
	return &entities.AnalysisRecord{
		ID: "a1",
		Result: &entities.AnalysisResult{
			Condition: "Flu",
			Urgency:   entities.UrgencyMedium,
		},
		Severity:        0.6,
		MatchedSymptoms: []string{"fever"},
		ModelID:         "m1",
		CreatedAt:       time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC),
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body["error"]
}

func TestTriageHandler_Analyze_Success(t *testing.T) {
	service := &stubAnalysisService{record: sampleRecord()}
	handler := handlers.NewTriageHandler(service, vocabulary.MustLoad())

	req := httptest.NewRequest(http.MethodPost, "/api/triage/analyze", strings.NewReader(`{"symptoms":"fever"}`))
	w := httptest.NewRecorder()
	handler.Analyze(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, []string{"fever"}, service.texts)

	var record entities.AnalysisRecord
	require.NoError(t, json.NewDecoder(w.Body).Decode(&record))
	assert.Equal(t, "a1", record.ID)
	assert.Equal(t, "Flu", record.Result.Condition)
	assert.Equal(t, entities.UrgencyMedium, record.Result.Urgency)
}

func TestTriageHandler_Analyze_InvalidPayload(t *testing.T) {
	service := &stubAnalysisService{record: sampleRecord()}
	handler := handlers.NewTriageHandler(service, vocabulary.MustLoad())

	req := httptest.NewRequest(http.MethodPost, "/api/triage/analyze", strings.NewReader(`{"symptoms":`))
	w := httptest.NewRecorder()
	handler.Analyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request payload", decodeError(t, w))
	assert.Empty(t, service.texts)
}

func TestTriageHandler_Analyze_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "validation",
			err:     apperrors.NewValidationError("symptom text exceeds 2000 characters"),
			status:  http.StatusBadRequest,
			message: "symptom text exceeds 2000 characters",
		},
		{
			name:    "internal",
			err:     apperrors.NewInternalError("model exploded", errors.New("boom")),
			status:  http.StatusInternalServerError,
			message: "failed to analyze symptoms",
		},
		{
			name:    "plain error",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "failed to analyze symptoms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewTriageHandler(&stubAnalysisService{err: tt.err}, vocabulary.MustLoad())

			req := httptest.NewRequest(http.MethodPost, "/api/triage/analyze", strings.NewReader(`{"symptoms":"x"}`))
			w := httptest.NewRecorder()
			handler.Analyze(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decodeError(t, w))
		})
	}
}

func TestTriageHandler_GetVocabulary(t *testing.T) {
	v := vocabulary.MustLoad()
	handler := handlers.NewTriageHandler(&stubAnalysisService{}, v)

	req := httptest.NewRequest(http.MethodGet, "/api/triage/vocabulary", nil)
	w := httptest.NewRecorder()
	handler.GetVocabulary(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Symptoms []struct {
			Name   string  `json:"name"`
			Phrase string  `json:"phrase"`
			Weight float64 `json:"weight"`
		} `json:"symptoms"`
		Conditions []string `json:"conditions"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))

	assert.Len(t, body.Symptoms, v.SymptomCount())
	assert.Equal(t, v.Conditions(), body.Conditions)

	found := false
	for _, s := range body.Symptoms {
		if s.Name == "chest_pain" {
			found = true
			assert.Equal(t, "chest pain", s.Phrase)
			assert.InDelta(t, 0.7, s.Weight, 1e-9)
		}
	}
	assert.True(t, found)
}

func TestTriageHandler_GetConditionFees(t *testing.T) {
	handler := handlers.NewTriageHandler(&stubAnalysisService{}, vocabulary.MustLoad())

	req := httptest.NewRequest(http.MethodGet, "/api/triage/conditions/Tuberculosis/fees", nil)
	req.SetPathValue("name", "Tuberculosis")
	w := httptest.NewRecorder()
	handler.GetConditionFees(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Condition          string                    `json:"condition"`
		Fees               entities.ConsultationFees `json:"consultationFees"`
		EmergencyFee       int                       `json:"emergencyFee"`
		RequiresSpecialist bool                      `json:"requiresSpecialist"`
		SpecialistType     string                    `json:"specialistType"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Tuberculosis", body.Condition)
	assert.Equal(t, 5000, body.Fees.Initial)
	assert.Equal(t, 10000, body.EmergencyFee)
	assert.True(t, body.RequiresSpecialist)
	assert.Equal(t, "Pulmonologist", body.SpecialistType)
}

func TestTriageHandler_GetConditionFees_Unknown(t *testing.T) {
	handler := handlers.NewTriageHandler(&stubAnalysisService{}, vocabulary.MustLoad())

	req := httptest.NewRequest(http.MethodGet, "/api/triage/conditions/Scurvy/fees", nil)
	req.SetPathValue("name", "Scurvy")
	w := httptest.NewRecorder()
	handler.GetConditionFees(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "condition not found", decodeError(t, w))
}
