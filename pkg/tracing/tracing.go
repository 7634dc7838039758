// Package tracing builds the OpenTelemetry tracer provider used by the API.
package tracing

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	// ExporterNone records spans in process without exporting them.
	ExporterNone = "none"
	// ExporterStdout writes finished spans as JSON to Options.Output.
	ExporterStdout = "stdout"
)

// ServiceName is reported as service.name on every span.
const ServiceName = "dorker"

var ErrUnknownExporter = errors.New("unknown trace exporter")

type Options struct {
	// Exporter is one of ExporterNone or ExporterStdout. Empty means none.
	Exporter string
	// Output receives stdout exports. Defaults to os.Stdout.
	Output io.Writer
	// Processors are registered in addition to the exporter.
	Processors []sdktrace.SpanProcessor
}

// NewProvider returns a tracer provider exporting through opts.Exporter. The
// caller owns it and must call Shutdown to flush pending spans.
func NewProvider(opts Options) (*sdktrace.TracerProvider, error) {
	providerOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", ServiceName))),
	}

	switch opts.Exporter {
	case "", ExporterNone:
	case ExporterStdout:
		if opts.Output == nil {
			opts.Output = os.Stdout
		}
		exp, err := stdouttrace.New(stdouttrace.WithWriter(opts.Output))
		if err != nil {
			return nil, fmt.Errorf("could not create stdout trace exporter: %w", err)
		}
		providerOpts = append(providerOpts, sdktrace.WithBatcher(exp))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, opts.Exporter)
	}

	for _, p := range opts.Processors {
		providerOpts = append(providerOpts, sdktrace.WithSpanProcessor(p))
	}

	return sdktrace.NewTracerProvider(providerOpts...), nil
}
