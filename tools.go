//go:build tools

package tools

// This file tracks CLI tool dependencies used during development.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose (schema migrations)
