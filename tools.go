//go:build tools

package main

// Pins code generation tools in go.mod.
import (
	_ "github.com/dmarkham/enumer"
)
