package types

import (
	"fmt"
	"io"
)

// Logger has no state. A zero value is all any caller ever needs, so each
// call site constructs its own.
type Logger struct{}

// Log writes "Log: <message>" followed by a newline.
func (Logger) Log(w io.Writer, message string) error {
	_, err := fmt.Fprintf(w, "Log: %s\n", message)
	return err
}
