package evaluation

import (
	"context"
	"time"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
	"github.com/gregory-bot/telecurehospital/internal/triage"
)

// CaseAnalyzer runs the triage pipeline for one description.
type CaseAnalyzer interface {
	Run(ctx context.Context, symptomText string) (*triage.Analysis, error)
	ModelID() string
}

// Runner runs evaluation across a set of golden cases.
type Runner struct {
	analyzer CaseAnalyzer
}

func NewRunner(analyzer CaseAnalyzer) *Runner {
	return &Runner{analyzer: analyzer}
}

// Run analyzes every case. A failed analysis counts against accuracy and
// agreement; it does not abort the run unless ctx is done.
func (r *Runner) Run(ctx context.Context, cases []GoldenCase) (*Summary, error) {
	summary := &Summary{
		TotalCases: len(cases),
		ModelID:    r.analyzer.ModelID(),
		ByUrgency:  make(map[entities.Urgency]*UrgencySummary),
		Confusion:  make(map[entities.Urgency]map[entities.Urgency]int),
		Results:    make([]CaseResult, 0, len(cases)),
	}
	referralAgreed := 0

	for _, gc := range cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		analysis, err := r.analyzer.Run(ctx, gc.Text)
		result := CaseResult{
			CaseID:          gc.ID,
			ExpectedUrgency: gc.ExpectedUrgency,
			Latency:         time.Since(start),
			ReferralScored:  gc.ExpectReferral != nil,
		}

		if err != nil {
			result.Err = err.Error()
			summary.FailedCases++
		} else {
			result.Urgency = analysis.Result.Urgency
			result.UrgencyCorrect = analysis.Result.Urgency == gc.ExpectedUrgency
			result.Condition = analysis.Result.Condition
			result.Severity = analysis.Severity
			result.MatchedSymptoms = analysis.Symptoms
			result.SymptomRecall = SymptomRecall(gc.ExpectedSymptoms, analysis.Symptoms)
			result.SymptomPrecision = SymptomPrecision(gc.ExpectedSymptoms, analysis.Symptoms)
			if gc.ExpectReferral != nil {
				referred := analysis.Result.SpecialistReferral != ""
				result.ReferralCorrect = referred == *gc.ExpectReferral
			}
		}

		if result.ReferralScored {
			summary.ReferralCases++
			if result.ReferralCorrect {
				referralAgreed++
			}
		}
		r.updateSummary(summary, result)
	}

	r.finalizeSummary(summary, referralAgreed)
	return summary, nil
}

func (r *Runner) updateSummary(s *Summary, res CaseResult) {
	s.Results = append(s.Results, res)
	s.AvgLatency += res.Latency
	s.AvgSymptomRecall += res.SymptomRecall
	s.AvgSymptomPrecision += res.SymptomPrecision
	if res.UrgencyCorrect {
		s.UrgencyAccuracy++
	}

	if _, ok := s.ByUrgency[res.ExpectedUrgency]; !ok {
		s.ByUrgency[res.ExpectedUrgency] = &UrgencySummary{}
	}
	us := s.ByUrgency[res.ExpectedUrgency]
	us.Count++
	us.AvgSymptomRecall += res.SymptomRecall
	if res.UrgencyCorrect {
		us.Correct++
	}

	if res.Err == "" {
		if _, ok := s.Confusion[res.ExpectedUrgency]; !ok {
			s.Confusion[res.ExpectedUrgency] = make(map[entities.Urgency]int)
		}
		s.Confusion[res.ExpectedUrgency][res.Urgency]++
	}
}

func (r *Runner) finalizeSummary(s *Summary, referralAgreed int) {
	if s.TotalCases > 0 {
		n := float64(s.TotalCases)
		s.UrgencyAccuracy /= n
		s.AvgSymptomRecall /= n
		s.AvgSymptomPrecision /= n
		s.AvgLatency /= time.Duration(s.TotalCases)
	}
	if s.ReferralCases > 0 {
		s.ReferralAgreement = float64(referralAgreed) / float64(s.ReferralCases)
	}

	for _, us := range s.ByUrgency {
		if us.Count > 0 {
			n := float64(us.Count)
			us.Accuracy = float64(us.Correct) / n
			us.AvgSymptomRecall /= n
		}
	}
}
