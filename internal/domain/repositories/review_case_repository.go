package repositories

import (
	"context"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
)

// ReviewCaseFilter narrows ListPending
type ReviewCaseFilter struct {
	Urgency entities.Urgency
	Limit   int
	Offset  int
}

// ReviewCaseRepository persists escalated analyses awaiting review
type ReviewCaseRepository interface {
	// Create stores a new case. Creating a case for an analysis that already
	// has one is a no-op.
	Create(ctx context.Context, reviewCase *entities.ReviewCase) error

	// ListPending returns pending cases, newest first
	ListPending(ctx context.Context, filter ReviewCaseFilter) ([]*entities.ReviewCase, error)

	// Resolve marks a case resolved
	Resolve(ctx context.Context, id string) error
}
