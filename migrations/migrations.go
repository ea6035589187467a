// Package migrations embeds the goose SQL migrations so the server can
// bring the schema up to date at startup without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
