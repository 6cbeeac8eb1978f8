package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
	"github.com/gregory-bot/telecurehospital/internal/domain/providers"
	"github.com/gregory-bot/telecurehospital/internal/domain/repositories"
	"github.com/gregory-bot/telecurehospital/internal/infrastructure/observability"
	apperrors "github.com/gregory-bot/telecurehospital/pkg/errors"
)

// ReviewService turns escalation events into persisted review cases
type ReviewService struct {
	repo     repositories.ReviewCaseRepository
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewReviewService creates a new review service
func NewReviewService(repo repositories.ReviewCaseRepository, eventBus providers.EventBus) *ReviewService {
	ctx, cancel := context.WithCancel(context.Background())
	return &ReviewService{
		repo:     repo,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins consuming escalation events
func (s *ReviewService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelEscalations)
	if err != nil {
		return fmt.Errorf("failed to subscribe to escalations: %w", err)
	}

	s.wg.Add(1)
	go s.processEvents(eventChan)
	observability.GetLogger().Info().Msg("Review queue started")
	return nil
}

// Stop drops the escalation subscription and waits for the in-flight event
func (s *ReviewService) Stop() {
	if err := s.eventBus.Unsubscribe(context.Background(), providers.EventChannelEscalations); err != nil {
		observability.GetLogger().Warn().Err(err).Msg("Failed to unsubscribe from escalations")
	}
	s.cancel()
	s.wg.Wait()
	observability.GetLogger().Info().Msg("Review queue stopped")
}

func (s *ReviewService) processEvents(eventChan <-chan *entities.EscalationEvent) {
	defer s.wg.Done()
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.HandleEvent(ctx, event); err != nil {
				observability.LoggerFromContext(ctx).Error().
					Err(err).
					Str("event_id", event.ID).
					Str("analysis_id", event.AnalysisID).
					Msg("Failed to open review case")
			}
			cancel()
		}
	}
}

// HandleEvent persists one escalation as a pending review case
func (s *ReviewService) HandleEvent(ctx context.Context, event *entities.EscalationEvent) error {
	if event.AnalysisID == "" {
		return apperrors.NewValidationError("escalation event has no analysis id")
	}
	if len(event.Reasons) == 0 {
		return apperrors.NewValidationError("escalation event has no reasons")
	}

	reviewCase := entities.NewReviewCase(uuid.NewString(), event)
	if reviewCase.CreatedAt.IsZero() {
		reviewCase.CreatedAt = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, reviewCase); err != nil {
		return err
	}

	observability.LoggerFromContext(ctx).Info().
		Str("review_case_id", reviewCase.ID).
		Str("analysis_id", reviewCase.AnalysisID).
		Str("urgency", string(reviewCase.Urgency)).
		Msg("Review case opened")
	return nil
}

// ListPending returns pending review cases, newest first
func (s *ReviewService) ListPending(ctx context.Context, filter repositories.ReviewCaseFilter) ([]*entities.ReviewCase, error) {
	if filter.Urgency != "" && !filter.Urgency.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown urgency %q", filter.Urgency))
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, apperrors.NewValidationError("limit and offset must not be negative")
	}
	return s.repo.ListPending(ctx, filter)
}

// Resolve closes a pending review case
func (s *ReviewService) Resolve(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewValidationError("review case id must be a UUID")
	}
	return s.repo.Resolve(ctx, id)
}
