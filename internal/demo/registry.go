package demo

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/shapes/pkg/types"
)

// Demo names in run order.
const (
	NameClassicStruct     = "classic-struct"
	NameTupleStruct       = "tuple-struct"
	NameUnitStruct        = "unit-struct"
	NameFileModeReadOnly  = "file-mode-read-only"
	NameFileModeWriteOnly = "file-mode-write-only"
	NameSingleton         = "singleton"
	NameUnitTrait         = "unit-trait"
	NameEnumMatch         = "enum-match"
	NameDescribe          = "describe"
)

// ErrUnknownDemo is returned when a name does not match any registered demo.
var ErrUnknownDemo = errors.New("unknown demo")

// Demo is one registered demonstration routine.
type Demo struct {
	// Name is the stable identifier used on the command line.
	Name string

	// Summary is a one-line description for listings.
	Summary string

	// Subject returns the value the routine constructs.
	Subject func() any

	// Run writes the routine's output to w.
	Run func(w io.Writer) error
}

var registry = []Demo{
	{
		Name:    NameClassicStruct,
		Summary: "record with named fields",
		Subject: func() any { return newUser() },
		Run:     UseClassicStruct,
	},
	{
		Name:    NameTupleStruct,
		Summary: "positional fixed-arity color",
		Subject: func() any { return newColor() },
		Run:     UseTupleStruct,
	},
	{
		Name:    NameUnitStruct,
		Summary: "zero-field marker",
		Subject: func() any { return types.Marker{} },
		Run:     UseUnitStruct,
	},
	{
		Name:    NameFileModeReadOnly,
		Summary: "read-only mode selector passed to a generic function",
		Subject: func() any { return types.ReadOnly{} },
		Run: func(w io.Writer) error {
			return UseFileMode(w, types.ReadOnly{})
		},
	},
	{
		Name:    NameFileModeWriteOnly,
		Summary: "write-only mode selector passed to a generic function",
		Subject: func() any { return types.WriteOnly{} },
		Run: func(w io.Writer) error {
			return UseFileMode(w, types.WriteOnly{})
		},
	},
	{
		Name:    NameSingleton,
		Summary: "zero-size receiver hosting a method",
		Subject: func() any { return types.Logger{} },
		Run:     UseSingleton,
	},
	{
		Name:    NameUnitTrait,
		Summary: "capability implemented on a unit type",
		Subject: func() any { return types.DefaultBehaviour{} },
		Run:     UseUnitTrait,
	},
	{
		Name:    NameEnumMatch,
		Summary: "sum type consumed by an exhaustive match",
		Subject: func() any { return newMessage() },
		Run: func(w io.Writer) error {
			return UseEnumMatch(w, newMessage())
		},
	},
	{
		Name:    NameDescribe,
		Summary: "shared describable capability on unrelated records",
		Subject: func() any {
			return []types.Describer{
				types.Animal{Name: animalName},
				types.Vehicle{Model: vehicleModel},
			}
		},
		Run: UseDescribe,
	},
}

// All returns every demo in run order. The slice is a copy.
func All() []Demo {
	out := make([]Demo, len(registry))
	copy(out, registry)
	return out
}

// Names returns every demo name in run order.
func Names() []string {
	names := make([]string, len(registry))
	for i, d := range registry {
		names[i] = d.Name
	}
	return names
}

// Lookup returns the demo with the given name.
func Lookup(name string) (Demo, error) {
	for _, d := range registry {
		if d.Name == name {
			return d, nil
		}
	}
	return Demo{}, fmt.Errorf("%w %q (valid: %s)", ErrUnknownDemo, name, strings.Join(Names(), ", "))
}

// Select returns the named demos in run order, not argument order.
// Duplicates collapse. An empty selection returns every demo.
func Select(names []string) ([]Demo, error) {
	if len(names) == 0 {
		return All(), nil
	}

	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, err := Lookup(name); err != nil {
			return nil, err
		}
		want[name] = true
	}

	var out []Demo
	for _, d := range registry {
		if want[d.Name] {
			out = append(out, d)
		}
	}
	return out, nil
}
