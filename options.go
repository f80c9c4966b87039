package hashvec

import (
	"log/slog"
	"runtime"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures the observability of a Registry.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for lookups and batches.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hashvec.BasicMetricsCollector{}
//	reg := hashvec.Default.With(hashvec.WithMetricsCollector(metrics))
//	add, _ := hashvec.BindUpdateDenseSparse[float64](reg, ops.OpAdd)
//	fmt.Println(metrics.GetStats().LookupCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(base options, optFns []Option) options {
	o := base
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func defaultOptions() options {
	return options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

type batchOptions struct {
	concurrency int
}

// BatchOption configures a batch evaluation.
type BatchOption func(*batchOptions)

// WithConcurrency bounds the number of items evaluated in parallel.
// Values below 1 select GOMAXPROCS.
func WithConcurrency(n int) BatchOption {
	return func(o *batchOptions) {
		o.concurrency = n
	}
}

func applyBatchOptions(optFns []BatchOption) batchOptions {
	var o batchOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
