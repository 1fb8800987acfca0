//go:build tools
// +build tools

// Package petverse tracks the tools invoked by go:generate (mockgen).
package petverse

import (
	_ "go.uber.org/mock/mockgen"
)
