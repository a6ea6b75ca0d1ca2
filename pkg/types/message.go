// Message is a sum type. A value is exactly one of Quit, Move, Write, or
// ChangeColor, and each variant carries its own payload.
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Variant names accepted by ParseMessage.
const (
	VariantQuit        = "quit"
	VariantMove        = "move"
	VariantWrite       = "write"
	VariantChangeColor = "change-color"
)

// Variants lists the variant names in declaration order.
var Variants = []string{VariantQuit, VariantMove, VariantWrite, VariantChangeColor}

// Message parsing errors.
var (
	ErrUnknownVariant = errors.New("unknown message variant")
	ErrVariantArity   = errors.New("wrong number of variant arguments")
	ErrVariantPayload = errors.New("invalid variant payload")
)

// Message is implemented only by the variant types in this file.
type Message interface {
	isMessage()
}

// Quit carries no payload.
type Quit struct{}

// Move carries a target position.
type Move struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Write carries a line of text.
type Write struct {
	Text string `json:"text"`
}

// ChangeColor carries the new color components.
type ChangeColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func (Quit) isMessage()        {}
func (Move) isMessage()        {}
func (Write) isMessage()       {}
func (ChangeColor) isMessage() {}

// ParseMessage builds a Message from a variant name and its textual
// arguments. Write joins its arguments with single spaces and needs at
// least one.
func ParseMessage(variant string, args []string) (Message, error) {
	switch variant {
	case VariantQuit:
		if len(args) != 0 {
			return nil, arityError(variant, "0", len(args))
		}
		return Quit{}, nil

	case VariantMove:
		if len(args) != 2 {
			return nil, arityError(variant, "2", len(args))
		}
		x, err := parseInt32(args[0])
		if err != nil {
			return nil, err
		}
		y, err := parseInt32(args[1])
		if err != nil {
			return nil, err
		}
		return Move{X: x, Y: y}, nil

	case VariantWrite:
		if len(args) == 0 {
			return nil, arityError(variant, "at least 1", 0)
		}
		return Write{Text: strings.Join(args, " ")}, nil

	case VariantChangeColor:
		if len(args) != 3 {
			return nil, arityError(variant, "3", len(args))
		}
		var rgb [3]uint8
		for i, a := range args {
			n, err := strconv.ParseUint(a, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a color component (0-255)", ErrVariantPayload, a)
			}
			rgb[i] = uint8(n)
		}
		return ChangeColor{R: rgb[0], G: rgb[1], B: rgb[2]}, nil

	default:
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownVariant, variant, strings.Join(Variants, ", "))
	}
}

func arityError(variant, want string, got int) error {
	return fmt.Errorf("%w: %s takes %s, got %d", ErrVariantArity, variant, want, got)
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a 32-bit integer", ErrVariantPayload, s)
	}
	return int32(n), nil
}
