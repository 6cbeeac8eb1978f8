package vocabulary

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
)

const (
	// GenericRecoveryTime is returned when no condition/urgency estimate exists.
	GenericRecoveryTime = "Varies based on treatment adherence and response"

	// GenericSpecialist is the referral label for conditions without a mapped specialty.
	GenericSpecialist = "Relevant Specialist"
)

var (
	genericPreventiveMeasures = []string{"Maintain good hygiene", "Follow doctor's recommendations"}
	genericLifestyle          = []string{"Maintain a balanced diet", "Regular exercise", "Adequate rest"}
)

// ErrInvalidTables is wrapped by every load-time validation failure.
var ErrInvalidTables = errors.New("invalid clinical vocabulary")

// Tables is the raw reference dataset a Vocabulary is built from.
type Tables struct {
	Symptoms           []string
	SeverityWeights    map[string]float64
	Conditions         []string
	Fees               map[string]entities.ConsultationFees
	Medications        map[string][]string
	PreventiveMeasures map[string][]string
	Lifestyle          map[string][]string
	RecoveryTimes      map[string]map[entities.Urgency]string
	SpecialistTypes    map[string]string
	ReferralConditions []string
}

// BuiltinTables returns the dataset shipped with the service.
func BuiltinTables() Tables {
	return Tables{
		Symptoms:           symptomNames,
		SeverityWeights:    severityWeights,
		Conditions:         conditionNames,
		Fees:               feeSchedules,
		Medications:        medications,
		PreventiveMeasures: preventiveMeasures,
		Lifestyle:          lifestyleAdvice,
		RecoveryTimes:      recoveryTimes,
		SpecialistTypes:    specialistTypes,
		ReferralConditions: referralConditions,
	}
}

// Vocabulary is the immutable clinical reference dataset. All lookups are
// safe for concurrent use; returned slices are copies.
type Vocabulary struct {
	symptoms       []string
	weights        map[string]float64
	conditions     []string
	conditionIndex map[string]int
	fees           map[string]entities.ConsultationFees
	medications    map[string][]string
	preventive     map[string][]string
	lifestyle      map[string][]string
	recovery       map[string]map[entities.Urgency]string
	specialists    map[string]string
	referrals      map[string]struct{}
}

type loadOptions struct {
	feeOverridesPath string
}

// Option customizes Load.
type Option func(*loadOptions)

// WithFeeOverrides merges fee schedules from a JSON file over the built-in table.
func WithFeeOverrides(path string) Option {
	return func(o *loadOptions) {
		o.feeOverridesPath = path
	}
}

// Load builds the vocabulary from the built-in tables plus any overrides.
func Load(opts ...Option) (*Vocabulary, error) {
	options := loadOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	tables := BuiltinTables()
	if options.feeOverridesPath != "" {
		overrides, err := loadFeeOverrides(options.feeOverridesPath)
		if err != nil {
			return nil, err
		}
		tables.Fees = mergeFees(tables.Fees, overrides)
	}

	return New(tables)
}

// MustLoad is Load for process start-up paths that cannot continue without a vocabulary.
func MustLoad(opts ...Option) *Vocabulary {
	v, err := Load(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// New validates the tables and returns an immutable Vocabulary built from copies of them.
func New(t Tables) (*Vocabulary, error) {
	if len(t.Symptoms) == 0 {
		return nil, fmt.Errorf("%w: symptom list is empty", ErrInvalidTables)
	}
	if len(t.Conditions) == 0 {
		return nil, fmt.Errorf("%w: condition catalog is empty", ErrInvalidTables)
	}

	seen := make(map[string]struct{}, len(t.Symptoms))
	for i, s := range t.Symptoms {
		if s == "" {
			return nil, fmt.Errorf("%w: symptom at index %d is blank", ErrInvalidTables, i)
		}
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: duplicate symptom %q", ErrInvalidTables, s)
		}
		seen[s] = struct{}{}
	}

	weights := make(map[string]float64, len(t.SeverityWeights))
	for s, w := range t.SeverityWeights {
		if w < 0 || w > 1 {
			return nil, fmt.Errorf("%w: severity weight for %q is %v, want [0,1]", ErrInvalidTables, s, w)
		}
		weights[s] = w
	}

	conditionIndex := make(map[string]int, len(t.Conditions))
	fees := make(map[string]entities.ConsultationFees, len(t.Conditions))
	for i, c := range t.Conditions {
		if c == "" {
			return nil, fmt.Errorf("%w: condition at index %d is blank", ErrInvalidTables, i)
		}
		if _, dup := conditionIndex[c]; dup {
			return nil, fmt.Errorf("%w: duplicate condition %q", ErrInvalidTables, c)
		}
		conditionIndex[c] = i

		f, ok := t.Fees[c]
		if !ok {
			return nil, fmt.Errorf("%w: condition %q has no fee schedule", ErrInvalidTables, c)
		}
		if err := validateFees(c, f); err != nil {
			return nil, err
		}
		fees[c] = f
	}

	v := &Vocabulary{
		symptoms:       append([]string(nil), t.Symptoms...),
		weights:        weights,
		conditions:     append([]string(nil), t.Conditions...),
		conditionIndex: conditionIndex,
		fees:           fees,
		medications:    copyLists(t.Medications),
		preventive:     copyLists(t.PreventiveMeasures),
		lifestyle:      copyLists(t.Lifestyle),
		recovery:       make(map[string]map[entities.Urgency]string, len(t.RecoveryTimes)),
		specialists:    make(map[string]string, len(t.SpecialistTypes)),
		referrals:      make(map[string]struct{}, len(t.ReferralConditions)),
	}
	for c, byUrgency := range t.RecoveryTimes {
		inner := make(map[entities.Urgency]string, len(byUrgency))
		for u, estimate := range byUrgency {
			inner[u] = estimate
		}
		v.recovery[c] = inner
	}
	for c, label := range t.SpecialistTypes {
		v.specialists[c] = label
	}
	for _, c := range t.ReferralConditions {
		v.referrals[c] = struct{}{}
	}

	return v, nil
}

func validateFees(condition string, f entities.ConsultationFees) error {
	if f.Initial <= 0 || f.FollowUp <= 0 {
		return fmt.Errorf("%w: condition %q needs positive initial and follow-up fees", ErrInvalidTables, condition)
	}
	if f.Emergency < 0 || f.Specialist < 0 {
		return fmt.Errorf("%w: condition %q has a negative optional fee", ErrInvalidTables, condition)
	}
	return nil
}

func copyLists(src map[string][]string) map[string][]string {
	dst := make(map[string][]string, len(src))
	for k, list := range src {
		dst[k] = append([]string(nil), list...)
	}
	return dst
}

// Symptoms returns the ordered symptom vocabulary.
func (v *Vocabulary) Symptoms() []string {
	return append([]string(nil), v.symptoms...)
}

// SymptomCount is the presence vector width.
func (v *Vocabulary) SymptomCount() int {
	return len(v.symptoms)
}

// SeverityWeight returns the symptom's weight, or 0 for unweighted symptoms.
func (v *Vocabulary) SeverityWeight(symptom string) float64 {
	return v.weights[symptom]
}

// Conditions returns the ordered condition catalog.
func (v *Vocabulary) Conditions() []string {
	return append([]string(nil), v.conditions...)
}

// ConditionCount is the classifier output width.
func (v *Vocabulary) ConditionCount() int {
	return len(v.conditions)
}

// Condition returns the catalog entry at index.
func (v *Vocabulary) Condition(index int) (string, bool) {
	if index < 0 || index >= len(v.conditions) {
		return "", false
	}
	return v.conditions[index], true
}

// HasCondition reports catalog membership.
func (v *Vocabulary) HasCondition(condition string) bool {
	_, ok := v.conditionIndex[condition]
	return ok
}

// FeeSchedule returns the condition's fees. The second value is false only
// for names outside the catalog.
func (v *Vocabulary) FeeSchedule(condition string) (entities.ConsultationFees, bool) {
	f, ok := v.fees[condition]
	return f, ok
}

// Medications returns the registered medications, or an empty list.
func (v *Vocabulary) Medications(condition string) []string {
	return listOrFallback(v.medications[condition], nil)
}

// PreventiveMeasures returns condition-specific measures or the generic pair.
func (v *Vocabulary) PreventiveMeasures(condition string) []string {
	return listOrFallback(v.preventive[condition], genericPreventiveMeasures)
}

// Lifestyle returns condition-specific advice or the generic three items.
func (v *Vocabulary) Lifestyle(condition string) []string {
	return listOrFallback(v.lifestyle[condition], genericLifestyle)
}

// RecoveryTime returns the estimate for condition at urgency, or GenericRecoveryTime.
func (v *Vocabulary) RecoveryTime(condition string, urgency entities.Urgency) string {
	if estimate, ok := v.recovery[condition][urgency]; ok && estimate != "" {
		return estimate
	}
	return GenericRecoveryTime
}

// SpecialistType returns the mapped specialty, or GenericSpecialist.
func (v *Vocabulary) SpecialistType(condition string) string {
	if label, ok := v.specialists[condition]; ok && label != "" {
		return label
	}
	return GenericSpecialist
}

// RequiresSpecialist reports membership in the fixed referral set.
func (v *Vocabulary) RequiresSpecialist(condition string) bool {
	_, ok := v.referrals[condition]
	return ok
}

func listOrFallback(list, fallback []string) []string {
	if len(list) > 0 {
		return append([]string(nil), list...)
	}
	return append([]string{}, fallback...)
}

func loadFeeOverrides(path string) (map[string]entities.ConsultationFees, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fee schedule overrides: %w", err)
	}

	var overrides map[string]entities.ConsultationFees
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse fee schedule overrides: %w", err)
	}

	known := make(map[string]struct{}, len(conditionNames))
	for _, c := range conditionNames {
		known[c] = struct{}{}
	}
	for c := range overrides {
		if _, ok := known[c]; !ok {
			return nil, fmt.Errorf("%w: fee override for unknown condition %q", ErrInvalidTables, c)
		}
	}

	return overrides, nil
}

func mergeFees(base, overrides map[string]entities.ConsultationFees) map[string]entities.ConsultationFees {
	merged := make(map[string]entities.ConsultationFees, len(base))
	for c, f := range base {
		merged[c] = f
	}
	for c, f := range overrides {
		merged[c] = f
	}
	return merged
}
