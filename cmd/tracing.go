// Copyright © 2026 The clang-complete authors

package cmd

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var tracerProvider *sdktrace.TracerProvider

// startTracing installs a global tracer provider that writes finished
// spans to w.
func startTracing(w io.Writer) error {
	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return errors.Wrap(err, "creating span exporter")
	}
	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tracerProvider)
	return nil
}

// stopTracing flushes spans started by startTracing. It is a no-op when
// tracing is off.
func stopTracing(ctx context.Context) error {
	if tracerProvider == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := tracerProvider.Shutdown(ctx)
	tracerProvider = nil
	return errors.Wrap(err, "flushing spans")
}
