// Package migrations embeds the schema applied by the provisioning tool.
package migrations

import "embed"

//go:embed *.up.sql
var FS embed.FS

const (
	SyncLogs       = "001_create_sync_logs.up.sql"
	SportsEntities = "002_create_sports_entities.up.sql"
)
