package reportstore

import "embed"

// MigrationFS embeds the report store's SQL migrations into the binary so
// no migration files need to exist on disk at runtime.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
