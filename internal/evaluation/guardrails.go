package evaluation

import "fmt"

// GuardrailConfig sets the minimum acceptable scores for a run. Zero disables a check.
type GuardrailConfig struct {
	MinUrgencyAccuracy   float64
	MinSymptomRecall     float64
	MinReferralAgreement float64
	MaxFailedCases       int
}

// DefaultGuardrails holds the thresholds the bundled golden set must meet.
func DefaultGuardrails() GuardrailConfig {
	return GuardrailConfig{
		MinUrgencyAccuracy:   1.0,
		MinSymptomRecall:     1.0,
		MinReferralAgreement: 1.0,
	}
}

type Guardrails struct {
	config GuardrailConfig
}

func NewGuardrails(config GuardrailConfig) *Guardrails {
	if config.MaxFailedCases < 0 {
		config.MaxFailedCases = 0
	}
	return &Guardrails{config: config}
}

// Check lists every threshold s falls short of. An empty result passes.
func (g *Guardrails) Check(s *Summary) []string {
	var violations []string

	if g.config.MinUrgencyAccuracy > 0 && s.UrgencyAccuracy < g.config.MinUrgencyAccuracy {
		violations = append(violations, fmt.Sprintf("urgency accuracy %.3f below %.3f", s.UrgencyAccuracy, g.config.MinUrgencyAccuracy))
	}
	if g.config.MinSymptomRecall > 0 && s.AvgSymptomRecall < g.config.MinSymptomRecall {
		violations = append(violations, fmt.Sprintf("symptom recall %.3f below %.3f", s.AvgSymptomRecall, g.config.MinSymptomRecall))
	}
	if g.config.MinReferralAgreement > 0 && s.ReferralCases > 0 && s.ReferralAgreement < g.config.MinReferralAgreement {
		violations = append(violations, fmt.Sprintf("referral agreement %.3f below %.3f", s.ReferralAgreement, g.config.MinReferralAgreement))
	}
	if s.FailedCases > g.config.MaxFailedCases {
		violations = append(violations, fmt.Sprintf("%d failed cases, at most %d allowed", s.FailedCases, g.config.MaxFailedCases))
	}

	return violations
}
