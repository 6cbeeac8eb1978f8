package triage

import (
	"context"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
	"github.com/gregory-bot/telecurehospital/internal/domain/vocabulary"
	"github.com/gregory-bot/telecurehospital/internal/infrastructure/observability"
)

// Analysis is a result together with the intermediate values that produced it.
type Analysis struct {
	Result   *entities.AnalysisResult
	Symptoms []string
	Severity float64
	ModelID  string
}

// Analyzer runs the full pipeline: extract, score, classify, compose.
// It is safe for concurrent use.
type Analyzer struct {
	vocab      *vocabulary.Vocabulary
	extractor  *Extractor
	scorer     *SeverityScorer
	classifier *ConditionClassifier
	composer   *Composer
}

// NewAnalyzer wires the pipeline stages over one vocabulary. The classifier
// is not built until the first analysis or an explicit Warm.
func NewAnalyzer(v *vocabulary.Vocabulary, opts ...ClassifierOption) *Analyzer {
	return &Analyzer{
		vocab:      v,
		extractor:  NewExtractor(v),
		scorer:     NewSeverityScorer(v),
		classifier: NewConditionClassifier(v, opts...),
		composer:   NewComposer(v),
	}
}

func (a *Analyzer) Vocabulary() *vocabulary.Vocabulary {
	return a.vocab
}

func (a *Analyzer) Extractor() *Extractor {
	return a.extractor
}

func (a *Analyzer) Classifier() *ConditionClassifier {
	return a.classifier
}

// ModelID identifies the classifier parameters behind every result.
func (a *Analyzer) ModelID() string {
	return a.classifier.ModelID()
}

// Warm builds the classifier ahead of the first request.
func (a *Analyzer) Warm(ctx context.Context) error {
	if err := a.classifier.Warm(ctx); err != nil {
		return a.fail(ctx, "model initialization", err)
	}
	return nil
}

// Analyze returns the recommendation for symptomText. Every failure is an *AnalysisError.
func (a *Analyzer) Analyze(ctx context.Context, symptomText string) (*entities.AnalysisResult, error) {
	analysis, err := a.Run(ctx, symptomText)
	if err != nil {
		return nil, err
	}
	return analysis.Result, nil
}

// Run is Analyze plus the matched symptoms, severity and model ID.
func (a *Analyzer) Run(ctx context.Context, symptomText string) (*Analysis, error) {
	vec := a.extractor.Extract(symptomText)
	severity := a.scorer.Score(vec)
	urgency := ClassifyUrgency(severity)

	condition, probability, err := a.classifier.Predict(ctx, vec)
	if err != nil {
		return nil, a.fail(ctx, "classification", err)
	}

	result, err := a.composer.Compose(condition, probability, urgency, severity)
	if err != nil {
		return nil, a.fail(ctx, "composition", err)
	}

	return &Analysis{
		Result:   result,
		Symptoms: a.extractor.Matched(vec),
		Severity: severity,
		ModelID:  a.classifier.ModelID(),
	}, nil
}

func (a *Analyzer) fail(ctx context.Context, stage string, err error) error {
	observability.LoggerFromContext(ctx).Error().
		Err(err).
		Str("stage", stage).
		Str("model_id", a.classifier.ModelID()).
		Msg("symptom analysis failed")
	return &AnalysisError{Stage: stage, Err: err}
}
