package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
	"github.com/gregory-bot/telecurehospital/internal/domain/vocabulary"
	"github.com/gregory-bot/telecurehospital/internal/triage"
)

const maxAnalyzeBodyBytes = 64 << 10

// SymptomAnalysisService defines the analysis operation the triage handler depends on
type SymptomAnalysisService interface {
	Analyze(ctx context.Context, symptomText string) (*entities.AnalysisRecord, error)
}

// TriageHandler handles symptom analysis and vocabulary requests
type TriageHandler struct {
	service SymptomAnalysisService
	vocab   *vocabulary.Vocabulary
	phrases []vocabularySymptom
}

type analyzeRequest struct {
	Symptoms string `json:"symptoms"`
}

type vocabularySymptom struct {
	Name   string  `json:"name"`
	Phrase string  `json:"phrase"`
	Weight float64 `json:"weight,omitempty"`
}

// NewTriageHandler creates a new triage handler
func NewTriageHandler(service SymptomAnalysisService, v *vocabulary.Vocabulary) *TriageHandler {
	symptoms := v.Symptoms()
	searchPhrases := triage.NewExtractor(v).Phrases()
	phrases := make([]vocabularySymptom, len(symptoms))
	for i, s := range symptoms {
		phrases[i] = vocabularySymptom{
			Name:   s,
			Phrase: searchPhrases[i],
			Weight: v.SeverityWeight(s),
		}
	}
	return &TriageHandler{
		service: service,
		vocab:   v,
		phrases: phrases,
	}
}

// Analyze handles POST /api/triage/analyze
func (h *TriageHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAnalyzeBodyBytes)

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	record, err := h.service.Analyze(r.Context(), req.Symptoms)
	if err != nil {
		respondWithAppError(w, err, "failed to analyze symptoms")
		return
	}

	respondWithJSON(w, http.StatusOK, record)
}

// GetVocabulary handles GET /api/triage/vocabulary
func (h *TriageHandler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"symptoms":   h.phrases,
		"conditions": h.vocab.Conditions(),
	})
}

// GetConditionFees handles GET /api/triage/conditions/{name}/fees
func (h *TriageHandler) GetConditionFees(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		respondWithError(w, http.StatusBadRequest, "condition name is required")
		return
	}

	fees, ok := h.vocab.FeeSchedule(name)
	if !ok {
		respondWithError(w, http.StatusNotFound, "condition not found")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"condition":          name,
		"consultationFees":   fees,
		"emergencyFee":       fees.EmergencyOrDefault(),
		"requiresSpecialist": h.vocab.RequiresSpecialist(name),
		"specialistType":     h.vocab.SpecialistType(name),
	})
}
