package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"go.trai.ch/sema/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor, landing completed spans in the
// server log. The daemon has no console, so the log file is the only place
// span timings can surface.
type Bridge struct {
	log ports.Logger
}

// NewBridge returns a span processor that writes to log.
func NewBridge(log ports.Logger) *Bridge {
	return &Bridge{log: log}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and outcome.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.log == nil || !s.SpanContext().IsValid() {
		return
	}
	elapsed := s.EndTime().Sub(s.StartTime())
	if s.Status().Code == codes.Error {
		b.log.Infof("span %s failed after %s: %s", s.Name(), elapsed, s.Status().Description)
		return
	}
	b.log.Infof("span %s completed in %s", s.Name(), elapsed)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// InstallProvider registers a global tracer provider backed by the log
// bridge and returns it so the caller can shut it down.
func InstallProvider(log ports.Logger) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(log)),
	)
	otel.SetTracerProvider(tp)
	return tp
}
