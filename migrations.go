// Package dorker holds assets shared by the whole module.
package dorker

import "embed"

// Migrations contains the goose SQL migrations, one directory per database
// driver (migrations/postgres, migrations/sqlite).
//
//go:embed migrations
var Migrations embed.FS
