package otelbinkv

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	binkv "github.com/binkv/go-binkv"
	"github.com/binkv/go-binkv/wire"
)

// Attribute keys used by the InstrumentedStore instrumentation.
const (
	KeyAttribute     attribute.Key = "record.key"
	NumBinsAttribute attribute.Key = "record.num_bins"
	ErrorAttribute   attribute.Key = "error"
)

var _ binkv.Store = &InstrumentedStore{}

// InstrumentedStore is a wrapper type over a binkv.Store instance to provide
// instrumentation, in the form of metrics and traces using OpenTelemetry.
//
// Use NewInstrumentedStore for constructing a new instance of this type.
type InstrumentedStore struct {
	store binkv.Store

	tracer      trace.Tracer
	getDuration metric.Int64Histogram
	putDuration metric.Int64Histogram
}

func (is *InstrumentedStore) registerMetrics(meter metric.Meter) error {
	var err error

	if is.getDuration, err = meter.Int64Histogram(
		"binkv.store.get.duration.milliseconds",
		metric.WithUnit("ms"),
		metric.WithDescription("Duration in milliseconds of binkv.Store.Get operations performed."),
	); err != nil {
		return fmt.Errorf("otelbinkv.InstrumentedStore: failed to register metric: %w", err)
	}

	if is.putDuration, err = meter.Int64Histogram(
		"binkv.store.put.duration.milliseconds",
		metric.WithUnit("ms"),
		metric.WithDescription("Duration in milliseconds of binkv.Store.Put operations performed."),
	); err != nil {
		return fmt.Errorf("otelbinkv.InstrumentedStore: failed to register metric: %w", err)
	}

	return nil
}

// NewInstrumentedStore returns a wrapper type to provide OpenTelemetry
// instrumentation (metrics and traces) around a binkv.Store.
//
// An error is returned if metrics could not be registered.
func NewInstrumentedStore(store binkv.Store, options ...Option) (*InstrumentedStore, error) {
	cfg := newConfig(options...)

	is := &InstrumentedStore{
		store:  store,
		tracer: cfg.tracer(),
	}

	if err := is.registerMetrics(cfg.meter()); err != nil {
		return nil, err
	}

	return is, nil
}

// Get calls the wrapped binkv.Store.Get method and records metrics and traces around it.
func (is *InstrumentedStore) Get(ctx context.Context, key string) (rec wire.Record, err error) {
	attributes := []attribute.KeyValue{
		KeyAttribute.String(key),
	}

	ctx, span := is.tracer.Start(ctx, "binkv.Store.Get", trace.WithAttributes(attributes...))
	start := time.Now()

	defer func() {
		duration := time.Since(start)
		is.getDuration.Record(ctx, duration.Milliseconds(),
			metric.WithAttributes(ErrorAttribute.Bool(err != nil)))

		if err != nil {
			span.RecordError(err)
		}

		span.End()
	}()

	rec, err = is.store.Get(ctx, key)

	return
}

// Put calls the wrapped binkv.Store.Put method and records metrics and traces around it.
func (is *InstrumentedStore) Put(ctx context.Context, key string, bins []wire.Bin) (err error) {
	attributes := []attribute.KeyValue{
		KeyAttribute.String(key),
		NumBinsAttribute.Int(len(bins)),
	}

	ctx, span := is.tracer.Start(ctx, "binkv.Store.Put", trace.WithAttributes(attributes...))
	start := time.Now()

	defer func() {
		duration := time.Since(start)
		is.putDuration.Record(ctx, duration.Milliseconds(),
			metric.WithAttributes(ErrorAttribute.Bool(err != nil)))

		if err != nil {
			span.RecordError(err)
		}

		span.End()
	}()

	err = is.store.Put(ctx, key, bins)

	return
}
