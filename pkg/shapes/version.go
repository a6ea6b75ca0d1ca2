// Package shapes holds module-level metadata for the shapes demos.
package shapes

// Version is the release version of the shapes module.
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/shapes"
