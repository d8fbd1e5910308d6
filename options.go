package goapiver

import (
	"context"
	"log/slog"
)

// Option configures resolver behavior.
type Option func(*resolverConfig) error

// resolverConfig holds all resolver configuration.
type resolverConfig struct {
	eagerNamespaces bool

	// logger is the structured logger for debug output.
	// If nil, logging is disabled (silent mode).
	logger *slog.Logger
}

// WithEagerNamespaces materializes every nested resolver at construction
// instead of on first access.
func WithEagerNamespaces() Option {
	return func(c *resolverConfig) error {
		c.eagerNamespaces = true
		return nil
	}
}

// WithLogger sets a structured logger for resolver diagnostics.
// If not set, logging is disabled (silent mode).
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With("component", "apiver")
//	goapiver.NewResolver(reg, subject, goapiver.WithLogger(logger))
func WithLogger(l *slog.Logger) Option {
	return func(c *resolverConfig) error {
		c.logger = l
		return nil
	}
}

// log returns the configured logger, or a no-op logger if none was set.
func (c *resolverConfig) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(discardHandler{})
}

// discardHandler is a slog.Handler that discards all log records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// newResolverConfig creates a resolver configuration by applying the given
// options in order.
func newResolverConfig(opts ...Option) (*resolverConfig, error) {
	c := &resolverConfig{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
