// Command shapes prints one small demo per Go type-declaration form.
package main

import "github.com/mesh-intelligence/shapes/internal/cli"

func main() {
	cli.Execute()
}
