package evaluation

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestSymptomRecall_AllFound(t *testing.T) {
	got := SymptomRecall([]string{"fever", "cough"}, []string{"cough", "fever", "chest_pain"})
	if !almostEqual(got, 1.0) {
		t.Errorf("expected 1.0, got %f", got)
	}
}

func TestSymptomRecall_SomeMissing(t *testing.T) {
	got := SymptomRecall([]string{"fever", "cough", "chills", "rash"}, []string{"fever", "cough"})
	// 2 of 4 expected found
	if !almostEqual(got, 0.5) {
		t.Errorf("expected 0.5, got %f", got)
	}
}

func TestSymptomRecall_NothingExpected(t *testing.T) {
	got := SymptomRecall(nil, []string{"fever"})
	if !almostEqual(got, 1.0) {
		t.Errorf("expected 1.0, got %f", got)
	}
}

func TestSymptomRecall_NothingMatched(t *testing.T) {
	got := SymptomRecall([]string{"fever"}, nil)
	if !almostEqual(got, 0.0) {
		t.Errorf("expected 0.0, got %f", got)
	}
}

func TestSymptomRecall_DuplicatesCountOnce(t *testing.T) {
	got := SymptomRecall([]string{"fever", "fever"}, []string{"fever"})
	// duplicates shrink the numerator, not the denominator
	if !almostEqual(got, 0.5) {
		t.Errorf("expected 0.5, got %f", got)
	}
}

func TestSymptomPrecision(t *testing.T) {
	got := SymptomPrecision([]string{"cough"}, []string{"cough", "persistent_cough", "fever"})
	if !almostEqual(got, 1.0/3.0) {
		t.Errorf("expected 1/3, got %f", got)
	}

	got = SymptomPrecision([]string{"cough"}, nil)
	if !almostEqual(got, 1.0) {
		t.Errorf("expected 1.0 for an empty match, got %f", got)
	}
}
