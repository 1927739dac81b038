package ringbuffer

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a RingBuffer at construction time.
type Option[T any] func(*options[T])

// DropCallback is called with every item the buffer discards without handing it
// to a reader: the oldest item on overwrite, and the remaining contents on Reset
// or Close.
type DropCallback[T any] func(item T)

type options[T any] struct {
	registerer   prometheus.Registerer
	metricsName  string
	dropCallback DropCallback[T]
	logger       *slog.Logger
}

// WithMetrics exports the buffer's counters and gauges to the given registerer,
// labelled with name. The option is ignored if registerer is nil or name is empty.
func WithMetrics[T any](registerer prometheus.Registerer, name string) Option[T] {
	return func(o *options[T]) {
		if registerer != nil && name != "" {
			o.registerer = registerer
			o.metricsName = name
		}
	}
}

// WithDropCallback sets a function that receives every discarded item.
// It runs after the buffer's lock is released and before Cleanup is called
// on items implementing Cleanable.
func WithDropCallback[T any](callback DropCallback[T]) Option[T] {
	return func(o *options[T]) {
		o.dropCallback = callback
	}
}

// WithLogger sets the logger used for lifecycle events. Defaults to slog.Default().
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(o *options[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions[T any](opts ...Option[T]) *options[T] {
	o := &options[T]{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
