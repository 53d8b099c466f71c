// Package migrations embeds the server schema migrations, one directory per
// supported dialect. They are applied with goose at startup.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
