// Package migrations embeds the SQL migration files of the record cache.
package migrations

import "embed"

// FS holds the migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
