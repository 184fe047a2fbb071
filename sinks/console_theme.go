package sinks

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/willibrandon/timber/core"
)

// ConsoleTheme maps levels to colors. Levels without an entry are written
// uncolored.
type ConsoleTheme struct {
	Levels map[core.Level]*color.Color
}

// DefaultTheme colors errors red, warnings yellow and info blue.
func DefaultTheme() *ConsoleTheme {
	return &ConsoleTheme{
		Levels: map[core.Level]*color.Color{
			core.ErrorLevel: forcedColor(color.FgRed),
			core.WarnLevel:  forcedColor(color.FgYellow),
			core.InfoLevel:  forcedColor(color.FgBlue),
		},
	}
}

// VividTheme extends DefaultTheme to every level.
func VividTheme() *ConsoleTheme {
	theme := DefaultTheme()
	theme.Levels[core.AssertLevel] = forcedColor(color.FgHiRed, color.Bold)
	theme.Levels[core.DebugLevel] = forcedColor(color.FgCyan)
	theme.Levels[core.VerboseLevel] = forcedColor(color.FgHiBlack)
	theme.Levels[core.AnalyticsLevel] = forcedColor(color.FgMagenta)
	return theme
}

// paint wraps s in the level color, if any.
func (t *ConsoleTheme) paint(level core.Level, s string) string {
	if t == nil {
		return s
	}
	c, ok := t.Levels[level]
	if !ok || c == nil {
		return s
	}
	return c.Sprint(s)
}

// forcedColor returns a color that emits escapes regardless of color.NoColor;
// the sink decides whether to paint at all.
func forcedColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// shouldUseColor decides whether w gets ANSI escapes.
// TIMBER_FORCE_COLOR wins, then NO_COLOR, then terminal detection.
func shouldUseColor(w io.Writer) bool {
	if force := os.Getenv("TIMBER_FORCE_COLOR"); force != "" {
		switch strings.ToLower(force) {
		case "0", "false", "off", "none":
			return false
		default:
			return true
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
