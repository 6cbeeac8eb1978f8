package triage

import (
	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
	"github.com/gregory-bot/telecurehospital/internal/domain/vocabulary"
)

const (
	// HighUrgencyThreshold is the severity above which urgency is high.
	HighUrgencyThreshold = 0.7
	// MediumUrgencyThreshold is the severity above which urgency is medium.
	MediumUrgencyThreshold = 0.4
	// ReferralSeverityThreshold is the severity above which a specialist
	// referral is attached regardless of condition.
	ReferralSeverityThreshold = 0.8
)

// SeverityScorer sums the weights of present symptoms. The result is not normalized.
type SeverityScorer struct {
	weights []float64
}

func NewSeverityScorer(v *vocabulary.Vocabulary) *SeverityScorer {
	symptoms := v.Symptoms()
	weights := make([]float64, len(symptoms))
	for i, s := range symptoms {
		weights[i] = v.SeverityWeight(s)
	}
	return &SeverityScorer{weights: weights}
}

// Score returns Σ vec[i] × weight(symptom i).
func (s *SeverityScorer) Score(vec PresenceVector) float64 {
	score := 0.0
	for i, present := range vec {
		if i >= len(s.weights) {
			break
		}
		score += present * s.weights[i]
	}
	return score
}

// ClassifyUrgency maps a severity score onto an urgency tier using strict comparisons.
func ClassifyUrgency(severity float64) entities.Urgency {
	switch {
	case severity > HighUrgencyThreshold:
		return entities.UrgencyHigh
	case severity > MediumUrgencyThreshold:
		return entities.UrgencyMedium
	default:
		return entities.UrgencyLow
	}
}
