package sinks

import (
	"fmt"
	"reflect"
)

// DefaultLabel builds the "[TypeName.#identity]" label used by the sinks in
// this package. Pointer sinks get their address as identity; other values
// only their type name.
func DefaultLabel(sink any) string {
	if sink == nil {
		return "[<nil>]"
	}
	t := reflect.TypeOf(sink)
	v := reflect.ValueOf(sink)
	if t.Kind() == reflect.Pointer {
		return fmt.Sprintf("[%s.#%x]", t.Elem().Name(), v.Pointer())
	}
	return "[" + t.Name() + "]"
}
