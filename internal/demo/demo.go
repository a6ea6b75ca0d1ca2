// Package demo holds one routine per type-declaration form. Each routine
// builds its value, writes its representation, and keeps nothing.
package demo

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/shapes/pkg/types"
)

// Literal values used by the routines.
const (
	singletonMessage = "I am using a singleton!"
	animalName       = "Tiger John"
	vehicleModel     = "Honda"
)

// debugLine writes v as its package-qualified type name followed by its
// field-labelled value, e.g. types.Marker{}.
func debugLine(w io.Writer, v any) error {
	_, err := fmt.Fprintf(w, "%T%+v\n", v, v)
	return err
}

func newUser() types.User {
	return types.User{
		Username: "alice",
		Email:    "alice@gmail.com",
		Age:      30,
		Active:   true,
	}
}

func newColor() types.Color {
	return types.NewColor(255, 0, 0)
}

func newMessage() types.Message {
	return types.ChangeColor{R: 222, G: 222, B: 201}
}

// UseClassicStruct writes a User record.
func UseClassicStruct(w io.Writer) error {
	return debugLine(w, newUser())
}

// UseTupleStruct writes a Color.
func UseTupleStruct(w io.Writer) error {
	return debugLine(w, newColor())
}

// UseUnitStruct writes a Marker.
func UseUnitStruct(w io.Writer) error {
	return debugLine(w, types.Marker{})
}

// UseFileMode writes the mode selector it was instantiated with. Only the
// mode types satisfy the constraint.
func UseFileMode[M types.FileMode](w io.Writer, mode M) error {
	return debugLine(w, mode)
}

// UseSingleton calls a method on a freshly built zero-size Logger.
func UseSingleton(w io.Writer) error {
	logger := types.Logger{}
	return logger.Log(w, singletonMessage)
}

// UseUnitTrait performs the Action implemented by a unit type.
func UseUnitTrait(w io.Writer) error {
	action := types.DefaultBehaviour{}
	return action.Perform(w)
}

// MatchLine renders the line for a Message variant. It returns
// ErrUnknownVariant for a nil Message.
func MatchLine(m types.Message) (string, error) {
	switch m := m.(type) {
	case types.Quit:
		return "quitting!", nil
	case types.Move:
		return fmt.Sprintf("Move to (%d, %d)", m.X, m.Y), nil
	case types.Write:
		return fmt.Sprintf("Write message: %s", m.Text), nil
	case types.ChangeColor:
		return fmt.Sprintf("Change color to RGB(%d, %d, %d)", m.R, m.G, m.B), nil
	default:
		return "", fmt.Errorf("%w: %T", types.ErrUnknownVariant, m)
	}
}

// UseEnumMatch writes the matched line for m.
func UseEnumMatch(w io.Writer, m types.Message) error {
	line, err := MatchLine(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, line)
	return err
}

func describe[D types.Describer](w io.Writer, d D) error {
	_, err := fmt.Fprintln(w, d.Describe())
	return err
}

// UseDescribe writes the descriptions of an Animal and a Vehicle.
func UseDescribe(w io.Writer) error {
	if err := describe(w, types.Animal{Name: animalName}); err != nil {
		return err
	}
	return describe(w, types.Vehicle{Model: vehicleModel})
}
