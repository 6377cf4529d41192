// Package migrations embeds the ordered schema migrations for each backend.
// Files are named NNN_description.sql and applied in version order.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
