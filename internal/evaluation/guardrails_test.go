package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuardrails_Pass(t *testing.T) {
	g := NewGuardrails(DefaultGuardrails())

	assert.Empty(t, g.Check(&Summary{UrgencyAccuracy: 1, AvgSymptomRecall: 1}))
}

func TestGuardrails_ReportsEveryViolation(t *testing.T) {
	g := NewGuardrails(GuardrailConfig{
		MinUrgencyAccuracy:   0.9,
		MinSymptomRecall:     0.8,
		MinReferralAgreement: 0.75,
	})

	violations := g.Check(&Summary{
		UrgencyAccuracy:   0.5,
		AvgSymptomRecall:  0.7,
		ReferralCases:     4,
		ReferralAgreement: 0.5,
		FailedCases:       1,
	})

	assert.Len(t, violations, 4)
	assert.Contains(t, violations[0], "urgency accuracy")
	assert.Contains(t, violations[3], "failed cases")
}

func TestGuardrails_ZeroDisablesCheck(t *testing.T) {
	g := NewGuardrails(GuardrailConfig{})

	assert.Empty(t, g.Check(&Summary{UrgencyAccuracy: 0.1, AvgSymptomRecall: 0.1}))
}

func TestGuardrails_ReferralIgnoredWithoutScoredCases(t *testing.T) {
	g := NewGuardrails(GuardrailConfig{MinReferralAgreement: 1})

	assert.Empty(t, g.Check(&Summary{}))
}
