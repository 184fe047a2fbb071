package cmd

import (
	"io"

	"github.com/willibrandon/timber/core"
)

type (
	Command = command
	Option  = option
)

var NewCommand = newCommand

func WithArgs(a ...string) func(c *Command) {
	return func(c *Command) {
		c.root.SetArgs(a)
	}
}

func WithOutput(w io.Writer) func(c *Command) {
	return func(c *Command) {
		c.root.SetOut(w)
	}
}

func WithSinks(sinks ...core.Sink) func(c *Command) {
	return func(c *Command) {
		c.extraSinks = append(c.extraSinks, sinks...)
	}
}
