package observability

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type triageInstruments struct {
	analysisCount     metric.Int64Counter
	analysisDuration  metric.Float64Histogram
	analysisFailures  metric.Int64Counter
	modelInitCount    metric.Int64Counter
	modelInitFailures metric.Int64Counter
	escalationCount   metric.Int64Counter
}

var (
	triageInstrumentsOnce sync.Once
	triageMetrics         *triageInstruments
)

func initTriageInstruments() {
	meter := otel.Meter(instrumentationName)
	inst := &triageInstruments{}

	var err error
	if inst.analysisCount, err = meter.Int64Counter(
		"triage.analysis.count",
		metric.WithDescription("Completed symptom analyses by urgency"),
	); err != nil {
		return
	}
	if inst.analysisDuration, err = meter.Float64Histogram(
		"triage.analysis.duration",
		metric.WithDescription("Symptom analysis duration in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return
	}
	if inst.analysisFailures, err = meter.Int64Counter(
		"triage.analysis.failures",
		metric.WithDescription("Failed symptom analyses"),
	); err != nil {
		return
	}
	if inst.modelInitCount, err = meter.Int64Counter(
		"triage.model.init.count",
		metric.WithDescription("Condition classifier construction attempts"),
	); err != nil {
		return
	}
	if inst.modelInitFailures, err = meter.Int64Counter(
		"triage.model.init.failures",
		metric.WithDescription("Failed condition classifier constructions"),
	); err != nil {
		return
	}
	if inst.escalationCount, err = meter.Int64Counter(
		"triage.escalation.count",
		metric.WithDescription("Escalation events published for clinician review"),
	); err != nil {
		return
	}

	triageMetrics = inst
}

func triage() *triageInstruments {
	triageInstrumentsOnce.Do(initTriageInstruments)
	return triageMetrics
}

// RecordModelInit counts a classifier construction attempt and its outcome
func RecordModelInit(ctx context.Context, err error) {
	m := triage()
	if m == nil {
		return
	}
	m.modelInitCount.Add(ctx, 1)
	if err != nil {
		m.modelInitFailures.Add(ctx, 1)
	}
}

// RecordAnalysis records a completed analysis
func RecordAnalysis(ctx context.Context, urgency string, cached bool, duration time.Duration) {
	m := triage()
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("triage.urgency", urgency),
		attribute.Bool("triage.cached", cached),
	)
	m.analysisCount.Add(ctx, 1, attrs)
	m.analysisDuration.Record(ctx, float64(duration.Microseconds())/1000, attrs)
}

// RecordAnalysisFailure counts a failed analysis
func RecordAnalysisFailure(ctx context.Context) {
	if m := triage(); m != nil {
		m.analysisFailures.Add(ctx, 1)
	}
}

// RecordEscalation counts a published escalation event by its first reason
func RecordEscalation(ctx context.Context, reason string) {
	if m := triage(); m != nil {
		m.escalationCount.Add(ctx, 1, metric.WithAttributes(attribute.String("triage.escalation_reason", reason)))
	}
}
