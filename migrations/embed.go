// Package migrations embeds the goose SQL migrations so binaries and tests
// apply the same schema without a path on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
