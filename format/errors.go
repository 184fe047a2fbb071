package format

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrArgumentMismatch is matched by every *MismatchError.
var ErrArgumentMismatch = errors.New("more arguments than placeholders")

// MismatchError reports a template that received more arguments than it has
// placeholders.
type MismatchError struct {
	Template     string
	Placeholders int
	Args         int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("template %q has %d placeholder(s) but got %d argument(s)",
		e.Template, e.Placeholders, e.Args)
}

// Unwrap returns ErrArgumentMismatch.
func (e *MismatchError) Unwrap() error {
	return ErrArgumentMismatch
}
