package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
	"github.com/gregory-bot/telecurehospital/internal/domain/repositories"
	"github.com/gregory-bot/telecurehospital/internal/infrastructure/clients/postgres"
	"github.com/gregory-bot/telecurehospital/internal/infrastructure/observability"
	apperrors "github.com/gregory-bot/telecurehospital/pkg/errors"
)

//go:embed schema.sql
var reviewCaseSchema string

const (
	reviewCasesTable    = "review_cases"
	defaultPendingLimit = 50
	maxPendingLimit     = 500
)

var reviewCaseColumns = []interface{}{
	"id", "analysis_id", "symptom_text", "condition", "urgency",
	"reasons", "error", "status", "created_at", "resolved_at",
}

type reviewCaseRow struct {
	ID          string         `db:"id"`
	AnalysisID  string         `db:"analysis_id"`
	SymptomText string         `db:"symptom_text"`
	Condition   sql.NullString `db:"condition"`
	Urgency     sql.NullString `db:"urgency"`
	Reasons     pq.StringArray `db:"reasons"`
	Error       sql.NullString `db:"error"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	ResolvedAt  sql.NullTime   `db:"resolved_at"`
}

func (r reviewCaseRow) toEntity() *entities.ReviewCase {
	c := &entities.ReviewCase{
		ID:          r.ID,
		AnalysisID:  r.AnalysisID,
		SymptomText: r.SymptomText,
		Condition:   r.Condition.String,
		Urgency:     entities.Urgency(r.Urgency.String),
		Reasons:     make([]entities.EscalationReason, 0, len(r.Reasons)),
		Error:       r.Error.String,
		Status:      entities.ReviewStatus(r.Status),
		CreatedAt:   r.CreatedAt,
	}
	for _, reason := range r.Reasons {
		c.Reasons = append(c.Reasons, entities.EscalationReason(reason))
	}
	if r.ResolvedAt.Valid {
		resolved := r.ResolvedAt.Time
		c.ResolvedAt = &resolved
	}
	return c
}

// ReviewCaseAdapter implements review case persistence in Postgres.
type ReviewCaseAdapter struct {
	client  *postgres.Client
	db      *goqu.Database
	sqlx    *sqlx.DB
	metrics *observability.Metrics
}

// NewReviewCaseAdapter creates a new review case adapter. metrics may be nil.
func NewReviewCaseAdapter(client *postgres.Client, metrics *observability.Metrics) *ReviewCaseAdapter {
	return &ReviewCaseAdapter{
		client:  client,
		db:      goqu.New("postgres", client.DB()),
		sqlx:    sqlx.NewDb(client.DB(), "postgres"),
		metrics: metrics,
	}
}

var _ repositories.ReviewCaseRepository = (*ReviewCaseAdapter)(nil)

// EnsureSchema creates the review_cases table if it does not exist.
func (a *ReviewCaseAdapter) EnsureSchema(ctx context.Context) error {
	if _, err := a.client.DB().ExecContext(ctx, reviewCaseSchema); err != nil {
		return apperrors.NewInternalError("failed to create review case schema", err)
	}
	return nil
}

// Create inserts a review case, ignoring duplicates for the same analysis.
func (a *ReviewCaseAdapter) Create(ctx context.Context, reviewCase *entities.ReviewCase) error {
	if reviewCase == nil {
		return apperrors.NewInternalError("review case is nil", fmt.Errorf("review case is nil"))
	}
	defer a.observe(ctx, "insert_review_case", time.Now())

	reasons := make(pq.StringArray, 0, len(reviewCase.Reasons))
	for _, r := range reviewCase.Reasons {
		reasons = append(reasons, string(r))
	}

	record := goqu.Record{
		"id":           reviewCase.ID,
		"analysis_id":  reviewCase.AnalysisID,
		"symptom_text": reviewCase.SymptomText,
		"condition":    sql.NullString{String: reviewCase.Condition, Valid: reviewCase.Condition != ""},
		"urgency":      sql.NullString{String: string(reviewCase.Urgency), Valid: reviewCase.Urgency != ""},
		"reasons":      reasons,
		"error":        sql.NullString{String: reviewCase.Error, Valid: reviewCase.Error != ""},
		"status":       string(reviewCase.Status),
		"created_at":   reviewCase.CreatedAt,
	}

	query, args, err := a.db.Insert(reviewCasesTable).
		Prepared(true).
		Rows(record).
		OnConflict(goqu.DoNothing()).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build review case insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create review case", err)
	}
	return nil
}

// ListPending returns pending review cases, newest first.
func (a *ReviewCaseAdapter) ListPending(ctx context.Context, filter repositories.ReviewCaseFilter) ([]*entities.ReviewCase, error) {
	defer a.observe(ctx, "list_review_cases", time.Now())

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPendingLimit
	}
	if limit > maxPendingLimit {
		limit = maxPendingLimit
	}

	where := goqu.Ex{"status": string(entities.ReviewStatusPending)}
	if filter.Urgency != "" {
		where["urgency"] = string(filter.Urgency)
	}

	ds := a.db.From(reviewCasesTable).
		Prepared(true).
		Select(reviewCaseColumns...).
		Where(where).
		Order(goqu.I("created_at").Desc()).
		Limit(uint(limit))
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build review case query", err)
	}

	var rows []reviewCaseRow
	if err := a.sqlx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to list review cases", err)
	}

	cases := make([]*entities.ReviewCase, 0, len(rows))
	for _, row := range rows {
		cases = append(cases, row.toEntity())
	}
	return cases, nil
}

// Resolve marks a pending review case resolved.
func (a *ReviewCaseAdapter) Resolve(ctx context.Context, id string) error {
	defer a.observe(ctx, "resolve_review_case", time.Now())

	query, args, err := a.db.Update(reviewCasesTable).
		Prepared(true).
		Set(goqu.Record{
			"status":      string(entities.ReviewStatusResolved),
			"resolved_at": time.Now().UTC(),
		}).
		Where(goqu.Ex{"id": id, "status": string(entities.ReviewStatusPending)}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build review case update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to resolve review case", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("pending review case with id %s not found", id))
	}
	return nil
}

func (a *ReviewCaseAdapter) observe(ctx context.Context, operation string, start time.Time) {
	observability.RecordDBMetric(ctx, a.metrics, operation, time.Since(start))
}
