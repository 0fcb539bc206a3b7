package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WritesFieldsAndError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewLoggerFromZap(zap.New(core), false)

	log.Info("collection created", nil, map[string]interface{}{"collection": "Pizza"})
	log.Warn("request failed", errors.New("refused"), map[string]interface{}{"status": 0})
	log.Debug("no fields", nil)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, "collection created", entries[0].Message)
	assert.Equal(t, "Pizza", entries[0].ContextMap()["collection"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "refused", entries[1].ContextMap()["error"])

	assert.Empty(t, entries[2].Context)
}

func TestLogger_WithContextAddsTraceIDs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewLoggerFromZap(zap.New(core), true)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	log.WithContext(ctx).Info("traced", nil)
	log.WithContext(context.Background()).Info("untraced", nil)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, span.SpanContext().TraceID().String(), entries[0].ContextMap()["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), entries[0].ContextMap()["span_id"])
	assert.NotContains(t, entries[1].ContextMap(), "trace_id")
}

func TestLogger_WithContextDisabled(t *testing.T) {
	log := NewLoggerFromZap(zap.NewNop(), false)
	assert.Same(t, log, log.WithContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel(Debug))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(Info))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(Warning))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel(Error))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(LoggerConfig{Level: Debug, ServiceName: "test"})
	require.NoError(t, err)
	assert.True(t, log.Zap.Core().Enabled(zapcore.DebugLevel))
}
