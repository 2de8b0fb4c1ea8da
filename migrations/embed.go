// Package migrations holds the versioned schema applied by golang-migrate.
package migrations

import "embed"

// FS contains every *.sql migration file.
//
//go:embed *.sql
var FS embed.FS
