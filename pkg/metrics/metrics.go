// Package metrics holds the OpenTelemetry instruments recorded by the API.
// They are exported through the Prometheus registry served on the metrics
// path.
package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Instruments groups the meters recorded by the HTTP handlers.
type Instruments struct {
	// RequestDuration measures API request latency, labeled by route, method and status.
	RequestDuration metric.Float64Histogram
	// DorksGenerated counts successful query builds.
	DorksGenerated metric.Int64Counter
	// DorksSaved counts created saved dorks.
	DorksSaved metric.Int64Counter
	// DorksDeleted counts removed saved dorks.
	DorksDeleted metric.Int64Counter
}

// NewInstruments creates all instruments from meter.
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	duration, err := meter.Float64Histogram("dorker.http.request.duration",
		metric.WithDescription("Duration of API requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create request duration histogram: %w", err)
	}

	generated, err := meter.Int64Counter("dorker.dorks.generated",
		metric.WithDescription("Number of generated dork queries"))
	if err != nil {
		return nil, fmt.Errorf("could not create generated counter: %w", err)
	}

	saved, err := meter.Int64Counter("dorker.dorks.saved",
		metric.WithDescription("Number of saved dorks created"))
	if err != nil {
		return nil, fmt.Errorf("could not create saved counter: %w", err)
	}

	deleted, err := meter.Int64Counter("dorker.dorks.deleted",
		metric.WithDescription("Number of saved dorks deleted"))
	if err != nil {
		return nil, fmt.Errorf("could not create deleted counter: %w", err)
	}

	return &Instruments{
		RequestDuration: duration,
		DorksGenerated:  generated,
		DorksSaved:      saved,
		DorksDeleted:    deleted,
	}, nil
}
