package types

import "os"

// Marker carries no data. Its type is the whole value.
type Marker struct{}

// ReadOnly selects read-only access.
type ReadOnly struct{}

// WriteOnly selects write-only access.
type WriteOnly struct{}

// OpenFlag returns the os.OpenFile flag for read-only access.
func (ReadOnly) OpenFlag() int { return os.O_RDONLY }

// OpenFlag returns the os.OpenFile flag for write-only access.
func (WriteOnly) OpenFlag() int { return os.O_WRONLY }

// FileMode is satisfied only by the mode selector types.
type FileMode interface {
	ReadOnly | WriteOnly
	OpenFlag() int
}
