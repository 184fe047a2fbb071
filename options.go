package timber

import (
	"github.com/willibrandon/timber/core"
)

// config holds the settings used to construct a Registry.
type config struct {
	name  string
	sinks []core.Sink
}

// Option configures a Registry at construction.
type Option func(*config)

// WithName sets the name shown in the registry tag, e.g. "[app.#1a2b3c4d]".
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithSink registers a sink as soon as the registry is built.
func WithSink(sink core.Sink) Option {
	return func(c *config) {
		c.sinks = append(c.sinks, sink)
	}
}

// WithSinks registers several sinks as soon as the registry is built.
func WithSinks(sinks ...core.Sink) Option {
	return func(c *config) {
		c.sinks = append(c.sinks, sinks...)
	}
}
