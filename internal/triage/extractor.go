package triage

import (
	"strings"

	"github.com/gregory-bot/telecurehospital/internal/domain/vocabulary"
)

// PresenceVector marks, per vocabulary symptom, whether it was mentioned (1) or not (0).
type PresenceVector []float64

// Present reports whether slot i is set.
func (p PresenceVector) Present(i int) bool {
	return i >= 0 && i < len(p) && p[i] == 1
}

// Count returns the number of set slots.
func (p PresenceVector) Count() int {
	n := 0
	for _, v := range p {
		if v == 1 {
			n++
		}
	}
	return n
}

// Extractor maps free text onto the symptom vocabulary by case-insensitive
// substring matching. Negations are not handled: "no fever" still sets fever.
type Extractor struct {
	symptoms []string
	phrases  []string
}

// NewExtractor precomputes the search phrase for every symptom.
func NewExtractor(v *vocabulary.Vocabulary) *Extractor {
	symptoms := v.Symptoms()
	phrases := make([]string, len(symptoms))
	for i, s := range symptoms {
		phrases[i] = SymptomPhrase(s)
	}
	return &Extractor{symptoms: symptoms, phrases: phrases}
}

// SymptomPhrase turns a symptom identifier into the phrase searched for in text.
func SymptomPhrase(symptom string) string {
	return strings.ReplaceAll(symptom, "_", " ")
}

// Extract builds a fresh presence vector for text.
func (e *Extractor) Extract(text string) PresenceVector {
	vec := make(PresenceVector, len(e.phrases))
	lower := strings.ToLower(text)
	if lower == "" {
		return vec
	}

	for i, phrase := range e.phrases {
		if strings.Contains(lower, phrase) {
			vec[i] = 1
		}
	}
	return vec
}

// Matched lists the symptom identifiers set in vec, in vocabulary order.
func (e *Extractor) Matched(vec PresenceVector) []string {
	matched := make([]string, 0, vec.Count())
	for i, s := range e.symptoms {
		if vec.Present(i) {
			matched = append(matched, s)
		}
	}
	return matched
}

// Phrases returns the search phrase for every symptom, in vocabulary order.
func (e *Extractor) Phrases() []string {
	return append([]string(nil), e.phrases...)
}
