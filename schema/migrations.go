// Package schema embeds the SQL migration files applied by the store
// migration runner.
package schema

import "embed"

// MigrationsFS holds the forward-only migrations under pgmigrations/,
// applied in filename order.
//
//go:embed pgmigrations/*.sql
var MigrationsFS embed.FS
