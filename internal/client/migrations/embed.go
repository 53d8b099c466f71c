// Package migrations embeds the client-side schema migrations.
package migrations

import "embed"

//go:embed sqlite/*.sql
var Migrations embed.FS
