package entities

import "time"

// Urgency is the ordinal care tier derived from a severity score.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// ValidUrgencies returns the urgency tiers in ascending order.
func ValidUrgencies() []Urgency {
	return []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh}
}

// IsValid checks if the urgency value is one of the defined constants.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// ConsultationFees is a condition's fee schedule in whole shillings.
// Emergency and Specialist are optional; zero means not offered.
type ConsultationFees struct {
	Initial    int `json:"initial"`
	FollowUp   int `json:"followUp"`
	Emergency  int `json:"emergency,omitempty"`
	Specialist int `json:"specialist,omitempty"`
}

// HasEmergency reports whether an explicit emergency fee is set.
func (f ConsultationFees) HasEmergency() bool {
	return f.Emergency > 0
}

// HasSpecialist reports whether a specialist consultation is offered.
func (f ConsultationFees) HasSpecialist() bool {
	return f.Specialist > 0
}

// EmergencyOrDefault returns the emergency fee, or twice the initial fee when none is set.
func (f ConsultationFees) EmergencyOrDefault() int {
	if f.HasEmergency() {
		return f.Emergency
	}
	return f.Initial * 2
}

// AnalysisResult is the structured recommendation returned for one symptom description.
type AnalysisResult struct {
	Condition             string           `json:"condition"`
	Probability           float64          `json:"probability"`
	Urgency               Urgency          `json:"urgency"`
	Medications           []string         `json:"medications"`
	ConsultationFees      ConsultationFees `json:"consultationFees"`
	Recommendations       []string         `json:"recommendations"`
	SpecialistReferral    string           `json:"specialistReferral,omitempty"`
	EstimatedRecoveryTime string           `json:"estimatedRecoveryTime,omitempty"`
	PreventiveMeasures    []string         `json:"preventiveMeasures,omitempty"`
	Lifestyle             []string         `json:"lifestyle,omitempty"`
}

// AnalysisRecord wraps a result with the bookkeeping the API exposes.
type AnalysisRecord struct {
	ID              string          `json:"id"`
	Result          *AnalysisResult `json:"result"`
	Severity        float64         `json:"severity"`
	MatchedSymptoms []string        `json:"matchedSymptoms"`
	ModelID         string          `json:"modelId"`
	Cached          bool            `json:"cached"`
	CreatedAt       time.Time       `json:"createdAt"`
}
