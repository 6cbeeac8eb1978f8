package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregory-bot/telecurehospital/internal/application/services"
	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
	"github.com/gregory-bot/telecurehospital/internal/domain/vocabulary"
	"github.com/gregory-bot/telecurehospital/internal/triage"
	apperrors "github.com/gregory-bot/telecurehospital/pkg/errors"
)

const chestPainText = "I have a fever and a persistent cough with chest pain"

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

func uniformAnalyzer() *triage.Analyzer {
	return triage.NewAnalyzer(vocabulary.MustLoad(), triage.WithModelFactory(
		func(ctx context.Context, inputs, outputs int) (triage.Model, error) {
			return uniformModel{outputs: outputs}, nil
		},
	))
}

func TestAnalysisService_HighUrgencyEscalates(t *testing.T) {
	bus := NewMockEventBus()
	svc := services.NewAnalysisService(uniformAnalyzer(), services.AnalysisServiceConfig{EventBus: bus})

	record, err := svc.Analyze(context.Background(), chestPainText)
	require.NoError(t, err)

	_, err = uuid.Parse(record.ID)
	assert.NoError(t, err)
	assert.False(t, record.Cached)
	assert.InDelta(t, 2.2, record.Severity, 1e-9)
	assert.ElementsMatch(t, []string{"fever", "cough", "persistent_cough", "chest_pain"}, record.MatchedSymptoms)
	assert.Equal(t, entities.UrgencyHigh, record.Result.Urgency)
	assert.Equal(t, vocabulary.GenericSpecialist, record.Result.SpecialistReferral)

	published := bus.Published()
	require.Len(t, published, 1)
	assert.Equal(t, record.ID, published[0].AnalysisID)
	assert.Equal(t, "Common Cold", published[0].Condition)
	assert.Equal(t, []entities.EscalationReason{entities.EscalationHighUrgency, entities.EscalationSpecialistReferral}, published[0].Reasons)
}

func TestAnalysisService_LowUrgencyDoesNotEscalate(t *testing.T) {
	bus := NewMockEventBus()
	svc := services.NewAnalysisService(uniformAnalyzer(), services.AnalysisServiceConfig{EventBus: bus})

	record, err := svc.Analyze(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, entities.UrgencyLow, record.Result.Urgency)
	assert.Empty(t, record.MatchedSymptoms)
	assert.Empty(t, bus.Published())
}

func TestAnalysisService_CachesPerModel(t *testing.T) {
	cache := NewMockCacheProvider()
	analyzer := uniformAnalyzer()
	svc := services.NewAnalysisService(analyzer, services.AnalysisServiceConfig{Cache: cache, CacheTTL: time.Minute})

	first, err := svc.Analyze(context.Background(), chestPainText)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	require.Len(t, cache.setKeys, 1)
	assert.Equal(t, services.AnalysisCacheKey(analyzer.ModelID(), chestPainText), cache.setKeys[0])
	assert.Contains(t, cache.setKeys[0], analyzer.ModelID())

	second, err := svc.Analyze(context.Background(), strings.ToUpper(chestPainText))
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Result, second.Result)
	assert.Equal(t, first.MatchedSymptoms, second.MatchedSymptoms)

	other := services.NewAnalysisService(uniformAnalyzer(), services.AnalysisServiceConfig{Cache: cache})
	third, err := other.Analyze(context.Background(), chestPainText)
	require.NoError(t, err)
	assert.False(t, third.Cached, "a different model must not read another model's results")
}

func TestAnalysisService_CacheFailuresDegradeToMiss(t *testing.T) {
	cache := NewMockCacheProvider()
	cache.getErr = errBackend
	cache.setErr = errBackend
	svc := services.NewAnalysisService(uniformAnalyzer(), services.AnalysisServiceConfig{Cache: cache})

	record, err := svc.Analyze(context.Background(), "headache")
	require.NoError(t, err)
	assert.False(t, record.Cached)
}

func TestAnalysisService_CorruptCacheEntryIgnored(t *testing.T) {
	cache := NewMockCacheProvider()
	analyzer := uniformAnalyzer()
	key := services.AnalysisCacheKey(analyzer.ModelID(), "headache")
	cache.data[key] = []byte("{not json")
	svc := services.NewAnalysisService(analyzer, services.AnalysisServiceConfig{Cache: cache})

	record, err := svc.Analyze(context.Background(), "headache")
	require.NoError(t, err)
	assert.False(t, record.Cached)
	assert.Equal(t, []string{key}, cache.deleted)

	// The fresh result replaced the unreadable entry
	again, err := svc.Analyze(context.Background(), "headache")
	require.NoError(t, err)
	assert.True(t, again.Cached)
}

func TestAnalysisService_PublishFailureDoesNotFailAnalysis(t *testing.T) {
	bus := NewMockEventBus()
	bus.publishErr = errBackend
	svc := services.NewAnalysisService(uniformAnalyzer(), services.AnalysisServiceConfig{EventBus: bus})

	_, err := svc.Analyze(context.Background(), chestPainText)
	assert.NoError(t, err)
}

func TestAnalysisService_RejectsOverlongText(t *testing.T) {
	svc := services.NewAnalysisService(uniformAnalyzer(), services.AnalysisServiceConfig{MaxTextLength: 10})

	_, err := svc.Analyze(context.Background(), "fever fever fever")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

	_, err = svc.Analyze(context.Background(), "fever")
	assert.NoError(t, err)
}

func TestAnalysisService_FailureIsWrappedAndEscalated(t *testing.T) {
	bus := NewMockEventBus()
	analyzer := triage.NewAnalyzer(vocabulary.MustLoad(), triage.WithModelFactory(
		func(ctx context.Context, inputs, outputs int) (triage.Model, error) {
			return nil, errBackend
		},
	))
	svc := services.NewAnalysisService(analyzer, services.AnalysisServiceConfig{EventBus: bus})

	_, err := svc.Analyze(context.Background(), "fever")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))

	var analysisErr *triage.AnalysisError
	assert.True(t, errors.As(err, &analysisErr))
	assert.ErrorIs(t, err, errBackend)

	published := bus.Published()
	require.Len(t, published, 1)
	assert.Equal(t, []entities.EscalationReason{entities.EscalationAnalysisFailed}, published[0].Reasons)
	assert.NotEmpty(t, published[0].Error)
}

func TestEscalationReasons(t *testing.T) {
	assert.Empty(t, services.EscalationReasons(&entities.AnalysisResult{Urgency: entities.UrgencyMedium}))
	assert.Equal(t,
		[]entities.EscalationReason{entities.EscalationSpecialistReferral},
		services.EscalationReasons(&entities.AnalysisResult{Urgency: entities.UrgencyLow, SpecialistReferral: "Neurologist"}),
	)
}

func TestAnalysisCacheKey_IgnoresCase(t *testing.T) {
	assert.Equal(t,
		services.AnalysisCacheKey("m1", "Fever and Cough"),
		services.AnalysisCacheKey("m1", "fever and cough"),
	)
	assert.NotEqual(t,
		services.AnalysisCacheKey("m1", "fever"),
		services.AnalysisCacheKey("m2", "fever"),
	)
	assert.True(t, strings.HasPrefix(services.AnalysisCacheKey("m1", "fever"), "triage:analysis:m1:"))
}
