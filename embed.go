package healthbot

import "embed"

// MigrationsFS holds the SQL migrations shipped with the binary.
//
//go:embed migrations
var MigrationsFS embed.FS
