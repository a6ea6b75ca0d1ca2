package types

import (
	"fmt"
	"io"
)

// Action is something that can be performed.
type Action interface {
	Perform(w io.Writer) error
}

// DefaultBehaviour is a unit type that implements Action.
type DefaultBehaviour struct{}

var _ Action = DefaultBehaviour{}

// Perform writes the default behaviour line.
func (DefaultBehaviour) Perform(w io.Writer) error {
	_, err := fmt.Fprintln(w, "performing the default behaviour!")
	return err
}
