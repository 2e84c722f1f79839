// Package migrations embeds the authenticator's PostgreSQL schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
