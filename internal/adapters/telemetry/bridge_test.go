package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/importa/internal/adapters/telemetry"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/importa/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newBridgedTracer(t *testing.T, log ports.Logger) ports.Tracer {
	t.Helper()
	tp := telemetry.NewProvider(log)
	setGlobalProvider(t, tp)
	return telemetry.NewOTelTracer("test")
}

func TestBridge_ReportsSummarySpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Info(gomock.Cond(func(msg string) bool {
		return strings.HasPrefix(msg, "Core done in ")
	})).Times(1)

	tracer := newBridgedTracer(t, mockLogger)
	_, span := tracer.Start(context.Background(), "Core", ports.WithSummary())
	span.End()
}

func TestBridge_ReportsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Warn(gomock.Cond(func(msg string) bool {
		return strings.HasPrefix(msg, "TestGfx failed after ") && strings.HasSuffix(msg, ": compile error")
	})).Times(1)

	tracer := newBridgedTracer(t, mockLogger)
	_, span := tracer.Start(context.Background(), "TestGfx", ports.WithSummary())
	span.RecordError(errors.New("compile error"))
	span.End()
}

func TestBridge_IgnoresOtherSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	tracer := newBridgedTracer(t, mockLogger)
	_, span := tracer.Start(context.Background(), "action")
	span.End()
}

func TestBridge_NilLogger(_ *testing.T) {
	bridge := telemetry.NewBridge(nil)

	tp := sdktrace.NewTracerProvider()
	_, span := tp.Tracer("test").Start(context.Background(), "test-span")
	span.End()

	if roSpan, ok := span.(sdktrace.ReadOnlySpan); ok {
		bridge.OnEnd(roSpan)
	}
	_ = bridge.ForceFlush(context.Background())
	_ = bridge.Shutdown(context.Background())
}
