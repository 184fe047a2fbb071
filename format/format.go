// Package format interpolates positional arguments into printf-style
// templates.
//
// Placeholders are printf directives (%s, %d, %f with optional width and
// precision) or a bare %. The directive letter only marks a position: every
// argument is rendered with its default string form. %% is a literal percent
// sign.
//
//	format.Format("%s is %d", "a", 1)      // "a is 1", nil
//	format.Format("disk at %d%%", 87)      // "disk at 87%", nil
//	format.Format("hi", "x")               // "hi", ErrArgumentMismatch
//
// Supplying fewer arguments than placeholders truncates the output after the
// last argument. Supplying more is an error.
package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/willibrandon/timber/core"
	"github.com/willibrandon/timber/selflog"
)

var placeholderPattern = regexp.MustCompile(`%%|%[0-9.|]*[sdf]|%`)

// template is a template split around its placeholders.
// len(fragments) == placeholders+1.
type template struct {
	fragments    []string
	placeholders int
}

func compile(raw string) *template {
	matches := placeholderPattern.FindAllStringIndex(raw, -1)
	t := &template{fragments: make([]string, 0, len(matches)+1)}

	var current strings.Builder
	last := 0
	for _, m := range matches {
		current.WriteString(raw[last:m[0]])
		last = m[1]
		if raw[m[0]:m[1]] == "%%" {
			current.WriteByte('%')
			continue
		}
		t.fragments = append(t.fragments, current.String())
		current.Reset()
		t.placeholders++
	}
	current.WriteString(raw[last:])
	t.fragments = append(t.fragments, current.String())
	return t
}

// Format renders template with args. With no args the template is returned
// untouched, escapes included. When args outnumber the placeholders the raw
// template is returned together with a *MismatchError.
func Format(template string, args ...any) (string, error) {
	if len(args) == 0 {
		return template, nil
	}

	t := lookup(template)
	if len(args) > t.placeholders {
		return template, &MismatchError{
			Template:     template,
			Placeholders: t.placeholders,
			Args:         len(args),
		}
	}

	var sb strings.Builder
	for i, arg := range args {
		sb.WriteString(t.fragments[i])
		sb.WriteString(String(arg))
	}
	if len(args) == t.placeholders {
		sb.WriteString(t.fragments[len(args)])
	}
	return sb.String(), nil
}

// Lenient is Format for sinks: a mismatch is reported to selflog and the raw
// template is returned.
func Lenient(template string, args ...any) string {
	s, err := Format(template, args...)
	if err != nil && selflog.IsEnabled() {
		selflog.Printf("[format] %v", err)
	}
	return s
}

// Placeholders returns the number of placeholders in template.
func Placeholders(template string) int {
	return lookup(template).placeholders
}

// String renders a single argument. Values implementing core.LogValue are
// rendered through their LogValue.
func String(v any) string {
	if lv, ok := v.(core.LogValue); ok {
		v = lv.LogValue()
	}
	return fmt.Sprint(v)
}
