package form

import (
	"time"

	"go.uber.org/zap"
)

// DefaultDismissAfter is how long the success message stays up.
const DefaultDismissAfter = 5 * time.Second

type Option func(*Controller)

func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

func WithSink(sink Sink) Option {
	return func(c *Controller) {
		if sink != nil {
			c.sink = sink
		}
	}
}

func WithDismissAfter(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.dismissAfter = d
		}
	}
}

func WithSubmitGate(g SubmitGate) Option {
	return func(c *Controller) { c.gate = g }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}
