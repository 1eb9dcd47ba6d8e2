package db

// Table names
const (
	tableWindowState  = "window_state"
	tableDesktopIcons = "desktop_icons"
	tableSettings     = "settings"
)

// schemaSQL creates every table if it is missing.
// Window and icon tables are replaced wholesale inside one transaction, so
// they carry no key constraint: DuckDB rejects re-inserting a key deleted
// earlier in the same transaction.
var schemaSQL = []string{
	`CREATE TABLE IF NOT EXISTS ` + tableWindowState + ` (
		id VARCHAR NOT NULL,
		title VARCHAR NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		minimized BOOLEAN NOT NULL DEFAULT false,
		position INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ` + tableDesktopIcons + ` (
		id VARCHAR NOT NULL,
		title VARCHAR NOT NULL,
		icon VARCHAR NOT NULL,
		icon_url VARCHAR,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		launch VARCHAR,
		position INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ` + tableSettings + ` (
		key VARCHAR PRIMARY KEY,
		value VARCHAR NOT NULL
	)`,
}
