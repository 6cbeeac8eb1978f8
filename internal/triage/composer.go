package triage

import (
	"fmt"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
	"github.com/gregory-bot/telecurehospital/internal/domain/vocabulary"
)

var baseAdvice = []string{"Rest and stay hydrated", "Monitor your symptoms"}

// Composer assembles the patient-facing recommendation from the vocabulary tables.
type Composer struct {
	vocab *vocabulary.Vocabulary
}

func NewComposer(v *vocabulary.Vocabulary) *Composer {
	return &Composer{vocab: v}
}

// Compose builds the result for a classified condition. Fees are never
// fabricated: a condition without a schedule yields MissingFeeScheduleError.
func (c *Composer) Compose(condition string, probability float64, urgency entities.Urgency, severity float64) (*entities.AnalysisResult, error) {
	fees, ok := c.vocab.FeeSchedule(condition)
	if !ok {
		return nil, &MissingFeeScheduleError{Condition: condition}
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("unknown urgency %q", urgency)
	}

	medications := c.vocab.Medications(condition)

	recommendations := make([]string, 0, len(baseAdvice)+len(medications)+6)
	recommendations = append(recommendations, baseAdvice...)
	recommendations = append(recommendations, medications...)
	recommendations = append(recommendations, urgencyAdvice(urgency, fees)...)

	result := &entities.AnalysisResult{
		Condition:             condition,
		Probability:           probability,
		Urgency:               urgency,
		Medications:           medications,
		ConsultationFees:      fees,
		Recommendations:       recommendations,
		EstimatedRecoveryTime: c.vocab.RecoveryTime(condition, urgency),
		PreventiveMeasures:    c.vocab.PreventiveMeasures(condition),
		Lifestyle:             c.vocab.Lifestyle(condition),
	}
	if NeedsReferral(c.vocab, condition, severity) {
		result.SpecialistReferral = c.vocab.SpecialistType(condition)
	}
	return result, nil
}

// NeedsReferral is true for conditions in the fixed specialist set and for
// any severity above ReferralSeverityThreshold.
func NeedsReferral(v *vocabulary.Vocabulary, condition string, severity float64) bool {
	return v.RequiresSpecialist(condition) || severity > ReferralSeverityThreshold
}

func urgencyAdvice(urgency entities.Urgency, fees entities.ConsultationFees) []string {
	switch urgency {
	case entities.UrgencyHigh:
		advice := []string{
			"Seek immediate medical attention",
			"Schedule an urgent consultation",
			fmt.Sprintf("Initial consultation fee: %s", ksh(fees.Initial)),
			fmt.Sprintf("Emergency consultation fee: %s", ksh(fees.EmergencyOrDefault())),
			"Consider emergency care if symptoms worsen",
		}
		if fees.HasSpecialist() {
			advice = append(advice, specialistLine(fees))
		}
		return advice

	case entities.UrgencyMedium:
		advice := []string{
			"Schedule a follow-up appointment",
			"Begin prescribed treatment plan",
			fmt.Sprintf("Initial consultation fee: %s", ksh(fees.Initial)),
			fmt.Sprintf("Follow-up consultation fee: %s", ksh(fees.FollowUp)),
		}
		if fees.HasSpecialist() {
			advice = append(advice, specialistLine(fees))
		}
		return append(advice, "Contact your doctor if symptoms persist")

	default:
		return []string{
			"Continue normal activities with caution",
			"Use over-the-counter medications as listed above",
			"If symptoms persist beyond 5-7 days:",
			fmt.Sprintf("  - Schedule a consultation (Fee: %s)", ksh(fees.Initial)),
			"Practice preventive measures",
		}
	}
}

func specialistLine(fees entities.ConsultationFees) string {
	return fmt.Sprintf("Specialist consultation available: %s", ksh(fees.Specialist))
}

func ksh(amount int) string {
	return fmt.Sprintf("KSH%d", amount)
}
