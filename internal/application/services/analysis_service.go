package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
	"github.com/gregory-bot/telecurehospital/internal/domain/providers"
	"github.com/gregory-bot/telecurehospital/internal/infrastructure/observability"
	"github.com/gregory-bot/telecurehospital/internal/triage"
	apperrors "github.com/gregory-bot/telecurehospital/pkg/errors"
)

const analysisCacheName = "analysis"

// SymptomAnalyzer is the triage pipeline as seen by the service.
type SymptomAnalyzer interface {
	Run(ctx context.Context, symptomText string) (*triage.Analysis, error)
	ModelID() string
}

// AnalysisServiceConfig wires the optional collaborators. A nil Cache
// disables result caching; a nil EventBus disables escalations.
type AnalysisServiceConfig struct {
	Cache         providers.CacheProvider
	CacheTTL      time.Duration
	EventBus      providers.EventBus
	Metrics       *observability.Metrics
	MaxTextLength int
}

// AnalysisService assigns analysis IDs, caches results per model and
// publishes escalations for clinician review.
type AnalysisService struct {
	analyzer SymptomAnalyzer
	cfg      AnalysisServiceConfig
	now      func() time.Time
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(analyzer SymptomAnalyzer, cfg AnalysisServiceConfig) *AnalysisService {
	return &AnalysisService{
		analyzer: analyzer,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type cachedAnalysis struct {
	Result   *entities.AnalysisResult `json:"result"`
	Severity float64                  `json:"severity"`
	Symptoms []string                 `json:"symptoms"`
}

// AnalysisCacheKey scopes a symptom text to the parameter state that analyzed it.
func AnalysisCacheKey(modelID, symptomText string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(symptomText)))
	return fmt.Sprintf("triage:analysis:%s:%s", modelID, hex.EncodeToString(sum[:]))
}

// Analyze runs one symptom description through the pipeline
func (s *AnalysisService) Analyze(ctx context.Context, symptomText string) (*entities.AnalysisRecord, error) {
	if s.cfg.MaxTextLength > 0 && utf8.RuneCountInString(symptomText) > s.cfg.MaxTextLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("symptom description exceeds %d characters", s.cfg.MaxTextLength))
	}

	ctx, span := observability.StartSpan(ctx, "triage.analyze")
	defer span.End()

	start := time.Now()
	record := &entities.AnalysisRecord{
		ID:        uuid.NewString(),
		ModelID:   s.analyzer.ModelID(),
		CreatedAt: s.now(),
	}
	observability.SetSpanAttributes(span,
		attribute.String("analysis.id", record.ID),
		attribute.String("model.id", record.ModelID),
	)
	logger := observability.LoggerFromContext(ctx)

	key := AnalysisCacheKey(record.ModelID, symptomText)
	if cached, ok := s.lookup(ctx, key); ok {
		record.Result = cached.Result
		record.Severity = cached.Severity
		record.MatchedSymptoms = cached.Symptoms
		record.Cached = true
	} else {
		analysis, err := s.analyzer.Run(ctx, symptomText)
		if err != nil {
			observability.RecordError(span, err)
			observability.RecordAnalysisFailure(ctx)
			logger.Error().Err(err).Str("analysis_id", record.ID).Msg("Symptom analysis failed")

			s.escalate(ctx, &entities.EscalationEvent{
				ID:          uuid.NewString(),
				AnalysisID:  record.ID,
				SymptomText: symptomText,
				Reasons:     []entities.EscalationReason{entities.EscalationAnalysisFailed},
				Error:       err.Error(),
				Timestamp:   record.CreatedAt,
			})
			return nil, apperrors.NewInternalError("symptom analysis failed", err)
		}

		record.Result = analysis.Result
		record.Severity = analysis.Severity
		record.MatchedSymptoms = analysis.Symptoms
		s.store(ctx, key, analysis)
	}

	observability.SetSpanAttributes(span,
		attribute.String("triage.condition", record.Result.Condition),
		attribute.String("triage.urgency", string(record.Result.Urgency)),
		attribute.Bool("triage.cached", record.Cached),
	)
	observability.RecordAnalysis(ctx, string(record.Result.Urgency), record.Cached, time.Since(start))

	if reasons := EscalationReasons(record.Result); len(reasons) > 0 {
		s.escalate(ctx, &entities.EscalationEvent{
			ID:          uuid.NewString(),
			AnalysisID:  record.ID,
			SymptomText: symptomText,
			Condition:   record.Result.Condition,
			Urgency:     record.Result.Urgency,
			Reasons:     reasons,
			Timestamp:   record.CreatedAt,
		})
	}

	logger.Info().
		Str("analysis_id", record.ID).
		Str("condition", record.Result.Condition).
		Str("urgency", string(record.Result.Urgency)).
		Float64("severity", record.Severity).
		Bool("cached", record.Cached).
		Msg("Symptom analysis completed")

	return record, nil
}

// EscalationReasons lists why a result needs clinician review, if at all
func EscalationReasons(result *entities.AnalysisResult) []entities.EscalationReason {
	var reasons []entities.EscalationReason
	if result.Urgency == entities.UrgencyHigh {
		reasons = append(reasons, entities.EscalationHighUrgency)
	}
	if result.SpecialistReferral != "" {
		reasons = append(reasons, entities.EscalationSpecialistReferral)
	}
	return reasons
}

func (s *AnalysisService) lookup(ctx context.Context, key string) (*cachedAnalysis, bool) {
	if s.cfg.Cache == nil {
		return nil, false
	}

	data, err := s.cfg.Cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		if err != nil && !errors.Is(err, providers.ErrCacheMiss) {
			observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Analysis cache read failed")
		}
		observability.RecordCacheMiss(ctx, s.cfg.Metrics, analysisCacheName)
		return nil, false
	}

	var cached cachedAnalysis
	if err := json.Unmarshal(data, &cached); err != nil || cached.Result == nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Discarding unreadable cached analysis")
		if err := s.cfg.Cache.Delete(ctx, key); err != nil {
			observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Failed to evict unreadable cached analysis")
		}
		observability.RecordCacheMiss(ctx, s.cfg.Metrics, analysisCacheName)
		return nil, false
	}

	observability.RecordCacheHit(ctx, s.cfg.Metrics, analysisCacheName)
	return &cached, true
}

func (s *AnalysisService) store(ctx context.Context, key string, analysis *triage.Analysis) {
	if s.cfg.Cache == nil {
		return
	}

	data, err := json.Marshal(cachedAnalysis{
		Result:   analysis.Result,
		Severity: analysis.Severity,
		Symptoms: analysis.Symptoms,
	})
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Failed to encode analysis for cache")
		return
	}

	if err := s.cfg.Cache.Set(ctx, key, data, int(s.cfg.CacheTTL.Seconds())); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Analysis cache write failed")
	}
}

func (s *AnalysisService) escalate(ctx context.Context, event *entities.EscalationEvent) {
	if s.cfg.EventBus == nil {
		return
	}

	if err := s.cfg.EventBus.Publish(ctx, providers.EventChannelEscalations, event); err != nil {
		observability.LoggerFromContext(ctx).Error().
			Err(err).
			Str("analysis_id", event.AnalysisID).
			Msg("Failed to publish escalation")
		return
	}
	observability.RecordEscalation(ctx, string(event.Reasons[0]))
}
