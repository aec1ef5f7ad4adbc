// Package telemetry installs the process-wide OpenTelemetry tracer provider.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const ServiceName = "parts-service"

type Provider struct {
	tp *sdktrace.TracerProvider
}

// Setup registers a tracer provider as the global one. Spans are printed to
// stdout when stdout is set, otherwise they are recorded and dropped.
func Setup(stdout bool) (*Provider, error) {
	return setup(stdout, os.Stdout)
}

func setup(export bool, w io.Writer) (*Provider, error) {
	res := resource.NewSchemaless(
		attribute.String("service.name", ServiceName),
	)
	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if export {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return &Provider{tp: tp}, nil
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.tp == nil {
		return nil
	}
	return p.tp.Shutdown(ctx)
}
