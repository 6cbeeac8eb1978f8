package observability

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

type exportedRecord struct {
	body     string
	severity otellog.Severity
}

type memoryExporter struct {
	mu      sync.Mutex
	records []exportedRecord
}

func (e *memoryExporter) Export(_ context.Context, records []sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range records {
		e.records = append(e.records, exportedRecord{body: r.Body().AsString(), severity: r.Severity()})
	}
	return nil
}

func (e *memoryExporter) Shutdown(context.Context) error   { return nil }
func (e *memoryExporter) ForceFlush(context.Context) error { return nil }

func TestLogHook_ForwardsEvents(t *testing.T) {
	exporter := &memoryExporter{}
	provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter)))
	defer provider.Shutdown(context.Background())

	logger := zerolog.New(io.Discard).Hook(otelLogHook{logger: provider.Logger("test")})
	logger.Warn().Str("stage", "classification").Msg("symptom analysis failed")

	exporter.mu.Lock()
	defer exporter.mu.Unlock()
	require.Len(t, exporter.records, 1)
	assert.Equal(t, "symptom analysis failed", exporter.records[0].body)
	assert.Equal(t, otellog.SeverityWarn, exporter.records[0].severity)
}

func TestSeverityFor(t *testing.T) {
	assert.Equal(t, otellog.SeverityInfo, severityFor(zerolog.InfoLevel))
	assert.Equal(t, otellog.SeverityError, severityFor(zerolog.ErrorLevel))
	assert.Equal(t, otellog.SeverityFatal, severityFor(zerolog.PanicLevel))
}

func TestTriageMetricsWithoutProvider(t *testing.T) {
	ctx := context.Background()

	assert.NotPanics(t, func() {
		RecordModelInit(ctx, nil)
		RecordModelInit(ctx, errors.New("boom"))
		RecordAnalysis(ctx, "high", false, 12*time.Millisecond)
		RecordAnalysisFailure(ctx)
		RecordEscalation(ctx, "high_urgency")
		RecordCacheHit(ctx, nil, "analysis")
		RecordRequestMetric(ctx, nil, "GET", "/health", 200, time.Millisecond)
	})
}

func TestInitMetrics(t *testing.T) {
	m, err := InitMetrics()
	require.NoError(t, err)
	assert.NotNil(t, m.RequestCount)

	assert.NotPanics(t, func() {
		RecordCacheMiss(context.Background(), m, "analysis")
		RecordDBMetric(context.Background(), m, "insert_review_case", time.Millisecond)
	})
}

func TestLoggerFromContext_RequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.NotNil(t, LoggerFromContext(ctx))
}
