package entities

import "time"

// EscalationReason explains why an analysis was routed to human review.
type EscalationReason string

const (
	EscalationHighUrgency        EscalationReason = "high_urgency"
	EscalationSpecialistReferral EscalationReason = "specialist_referral"
	EscalationAnalysisFailed     EscalationReason = "analysis_failed"
)

// EscalationEvent is published when an analysis needs a clinician to look at it.
type EscalationEvent struct {
	ID          string             `json:"id"`
	AnalysisID  string             `json:"analysis_id"`
	SymptomText string             `json:"symptom_text"`
	Condition   string             `json:"condition,omitempty"`
	Urgency     Urgency            `json:"urgency,omitempty"`
	Reasons     []EscalationReason `json:"reasons"`
	Error       string             `json:"error,omitempty"`
	Timestamp   time.Time          `json:"timestamp"`
}

// ReviewStatus is the lifecycle state of a review case.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusResolved ReviewStatus = "resolved"
)

// ReviewCase is a persisted escalation awaiting a clinician.
type ReviewCase struct {
	ID          string             `json:"id"`
	AnalysisID  string             `json:"analysis_id"`
	SymptomText string             `json:"symptom_text"`
	Condition   string             `json:"condition,omitempty"`
	Urgency     Urgency            `json:"urgency,omitempty"`
	Reasons     []EscalationReason `json:"reasons"`
	Error       string             `json:"error,omitempty"`
	Status      ReviewStatus       `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	ResolvedAt  *time.Time         `json:"resolved_at,omitempty"`
}

// NewReviewCase opens a pending case for an escalation event.
func NewReviewCase(id string, event *EscalationEvent) *ReviewCase {
	return &ReviewCase{
		ID:          id,
		AnalysisID:  event.AnalysisID,
		SymptomText: event.SymptomText,
		Condition:   event.Condition,
		Urgency:     event.Urgency,
		Reasons:     append([]EscalationReason(nil), event.Reasons...),
		Error:       event.Error,
		Status:      ReviewStatusPending,
		CreatedAt:   event.Timestamp,
	}
}
