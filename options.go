package sbbf

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Filter handle.
//
// Options only affect the ambient behaviour of a handle (logging and
// metrics). The bit layout is fixed and cannot be configured.
type Option func(*options)

// WithLogger sets a custom structured logger.
// Pass nil to disable logging (equivalent to NoopLogger).
//
// Example:
//
//	logger := sbbf.NewJSONLogger(slog.LevelDebug)
//	f := sbbf.New(sbbf.WithLogger(logger))
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

// WithMetricsCollector sets the collector that receives batch, parallel and
// validation metrics. Pass nil to disable metrics.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
