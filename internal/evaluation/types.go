package evaluation

import (
	"time"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
)

// GoldenCase is a labeled symptom description with its expected triage outcome.
type GoldenCase struct {
	ID               string           `json:"id"`
	Text             string           `json:"text"`
	ExpectedUrgency  entities.Urgency `json:"expected_urgency"`
	ExpectedSymptoms []string         `json:"expected_symptoms"`
	// ExpectReferral is only scored when set, since referral can depend on the classifier.
	ExpectReferral *bool  `json:"expect_referral,omitempty"`
	Difficulty     string `json:"difficulty"` // easy, medium, hard
}

// CaseResult holds the evaluation outcome for a single case.
type CaseResult struct {
	CaseID           string
	ExpectedUrgency  entities.Urgency
	Urgency          entities.Urgency
	UrgencyCorrect   bool
	Condition        string
	Severity         float64
	MatchedSymptoms  []string
	SymptomRecall    float64
	SymptomPrecision float64
	ReferralScored   bool
	ReferralCorrect  bool
	Latency          time.Duration
	Err              string `json:",omitempty"`
}

// Summary holds aggregate metrics across all golden cases.
type Summary struct {
	TotalCases          int
	FailedCases         int
	UrgencyAccuracy     float64
	AvgSymptomRecall    float64
	AvgSymptomPrecision float64
	ReferralCases       int
	ReferralAgreement   float64
	AvgLatency          time.Duration
	ModelID             string
	ByUrgency           map[entities.Urgency]*UrgencySummary
	// Confusion counts predictions per expected urgency.
	Confusion map[entities.Urgency]map[entities.Urgency]int
	Results   []CaseResult
}

// UrgencySummary holds metrics grouped by expected urgency.
type UrgencySummary struct {
	Count            int
	Correct          int
	Accuracy         float64
	AvgSymptomRecall float64
}
