// Color is a positional aggregate. Elements are addressed by index, not name.
package types

// Color holds red, green, and blue in that order.
type Color [3]uint8

// NewColor returns the color (r, g, b).
func NewColor(r, g, b uint8) Color {
	return Color{r, g, b}
}

// R returns the red component.
func (c Color) R() uint8 { return c[0] }

// G returns the green component.
func (c Color) G() uint8 { return c[1] }

// B returns the blue component.
func (c Color) B() uint8 { return c[2] }
