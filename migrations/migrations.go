// Package migrations embeds the goose SQL migrations so the migrate binary
// and the test bootstrap apply the same schema regardless of working
// directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
