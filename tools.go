//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used by go:generate directives:
// - github.com/matryer/moq (service and handler mocks in *_mock_test.go)
//
// Schema migrations run through `trackctl migrate`, which embeds the same
// goose provider as the server's auto-migrate.
