// Package migrations embeds the versioned SQL schema for each supported driver.
package migrations

import "embed"

// Postgres contains the PostgreSQL migrations under postgres/.
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite contains the SQLite migrations under sqlite/.
//
//go:embed sqlite/*.sql
var SQLite embed.FS
