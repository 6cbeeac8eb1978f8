package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
)

func TestLoad_BuiltinTablesAreComplete(t *testing.T) {
	v, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 125, v.SymptomCount())
	assert.Equal(t, 89, v.ConditionCount())

	for _, c := range v.Conditions() {
		fees, ok := v.FeeSchedule(c)
		assert.True(t, ok, "missing fee schedule for %s", c)
		assert.Positive(t, fees.Initial, c)
		assert.Positive(t, fees.FollowUp, c)
	}
}

func TestLoad_OrderIsStable(t *testing.T) {
	v := MustLoad()

	symptoms := v.Symptoms()
	assert.Equal(t, "fever", symptoms[0])
	assert.Equal(t, "cough", symptoms[1])
	assert.Equal(t, "spasms", symptoms[len(symptoms)-1])

	first, ok := v.Condition(0)
	require.True(t, ok)
	assert.Equal(t, "Common Cold", first)

	_, ok = v.Condition(v.ConditionCount())
	assert.False(t, ok)
}

func TestNew_MissingFeeScheduleFailsFast(t *testing.T) {
	tables := BuiltinTables()
	tables.Fees = map[string]entities.ConsultationFees{
		"Common Cold": {Initial: 300, FollowUp: 200},
	}

	_, err := New(tables)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTables)
	assert.Contains(t, err.Error(), "COVID-19")
}

func TestNew_RejectsDuplicates(t *testing.T) {
	tables := BuiltinTables()
	tables.Symptoms = []string{"fever", "cough", "fever"}
	_, err := New(tables)
	assert.ErrorIs(t, err, ErrInvalidTables)

	tables = BuiltinTables()
	tables.Conditions = []string{"Flu", "Flu"}
	_, err = New(tables)
	assert.ErrorIs(t, err, ErrInvalidTables)
}

func TestNew_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tables)
	}{
		{"empty symptoms", func(tb *Tables) { tb.Symptoms = nil }},
		{"empty conditions", func(tb *Tables) { tb.Conditions = nil }},
		{"weight above one", func(tb *Tables) {
			tb.SeverityWeights = map[string]float64{"fever": 1.5}
		}},
		{"zero initial fee", func(tb *Tables) {
			tb.Conditions = []string{"Flu"}
			tb.Fees = map[string]entities.ConsultationFees{"Flu": {FollowUp: 100}}
		}},
		{"negative specialist fee", func(tb *Tables) {
			tb.Conditions = []string{"Flu"}
			tb.Fees = map[string]entities.ConsultationFees{"Flu": {Initial: 1, FollowUp: 1, Specialist: -5}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := BuiltinTables()
			tt.mutate(&tables)
			_, err := New(tables)
			assert.ErrorIs(t, err, ErrInvalidTables)
		})
	}
}

func TestVocabulary_MissingWeightDefaultsToZero(t *testing.T) {
	v, err := New(Tables{
		Symptoms:        []string{"fever", "mystery_itch"},
		SeverityWeights: map[string]float64{"fever": 0.6},
		Conditions:      []string{"Flu"},
		Fees:            map[string]entities.ConsultationFees{"Flu": {Initial: 400, FollowUp: 250}},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.6, v.SeverityWeight("fever"))
	assert.Equal(t, 0.0, v.SeverityWeight("mystery_itch"))
	assert.Equal(t, 0.0, v.SeverityWeight("not_a_symptom"))
}

func TestVocabulary_Fallbacks(t *testing.T) {
	v := MustLoad()

	assert.Equal(t, []string{"Maintain good hygiene", "Follow doctor's recommendations"}, v.PreventiveMeasures("Unknown"))
	assert.Equal(t, []string{"Maintain a balanced diet", "Regular exercise", "Adequate rest"}, v.Lifestyle("Flu"))
	assert.Equal(t, GenericRecoveryTime, v.RecoveryTime("Flu", entities.UrgencyHigh))
	assert.Equal(t, GenericSpecialist, v.SpecialistType("Common Cold"))
	assert.NotNil(t, v.Medications("Stroke"))
	assert.Empty(t, v.Medications("Stroke"))
}

func TestVocabulary_ConditionSpecificLookups(t *testing.T) {
	v := MustLoad()

	assert.Equal(t, "3-7 days", v.RecoveryTime("Common Cold", entities.UrgencyLow))
	assert.Equal(t, "21-30 days", v.RecoveryTime("COVID-19", entities.UrgencyHigh))
	assert.Equal(t, "Neurologist", v.SpecialistType("Meningitis"))
	assert.True(t, v.RequiresSpecialist("Tuberculosis"))
	assert.False(t, v.RequiresSpecialist("Common Cold"))
	assert.Len(t, v.Lifestyle("Hypertension"), 5)
	assert.Contains(t, v.Medications("Flu"), "Plenty of fluids and rest")
}

func TestVocabulary_ReturnsCopies(t *testing.T) {
	v := MustLoad()

	meds := v.Medications("Flu")
	meds[0] = "tampered"
	assert.NotEqual(t, "tampered", v.Medications("Flu")[0])

	symptoms := v.Symptoms()
	symptoms[0] = "tampered"
	assert.Equal(t, "fever", v.Symptoms()[0])
}

func TestLoad_FeeOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fees.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Flu": {"initial": 450, "followUp": 300, "specialist": 1500}}`), 0o600))

	v, err := Load(WithFeeOverrides(path))
	require.NoError(t, err)

	fees, ok := v.FeeSchedule("Flu")
	require.True(t, ok)
	assert.Equal(t, entities.ConsultationFees{Initial: 450, FollowUp: 300, Specialist: 1500}, fees)

	cold, _ := v.FeeSchedule("Common Cold")
	assert.Equal(t, 300, cold.Initial)
}

func TestLoad_FeeOverridesRejectUnknownCondition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fees.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Dragon Pox": {"initial": 1, "followUp": 1}}`), 0o600))

	_, err := Load(WithFeeOverrides(path))
	assert.ErrorIs(t, err, ErrInvalidTables)
}

func TestLoad_FeeOverridesValidated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fees.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Flu": {"initial": 0, "followUp": 1}}`), 0o600))

	_, err := Load(WithFeeOverrides(path))
	assert.ErrorIs(t, err, ErrInvalidTables)
}

func TestLoad_FeeOverridesMissingFile(t *testing.T) {
	_, err := Load(WithFeeOverrides(filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, err)
}
