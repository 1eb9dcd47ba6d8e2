// Package db persists desktop state in DuckDB: window geometry, desktop
// icons, and desktop settings.
package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Project-Sylos/Desktop98/internal/types"
	_ "github.com/marcboeker/go-duckdb"
)

// DB wraps a DuckDB connection
type DB struct {
	conn *sql.DB
	mu   sync.Mutex // Protects all database operations from concurrent access
}

// New opens the database at dbPath and creates missing tables.
// An empty path opens an in-memory database.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB connection: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.InitializeSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// InitializeSchema creates the desktop tables
func (db *DB) InitializeSchema() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, stmt := range schemaSQL {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// SaveWindows replaces the persisted windows with states, keeping their order
func (db *DB) SaveWindows(states []types.WindowState) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + tableWindowState); err != nil {
		return fmt.Errorf("failed to clear window state: %w", err)
	}

	if len(states) > 0 {
		stmt, err := tx.Prepare(`INSERT INTO ` + tableWindowState + `
			(id, title, x, y, width, height, minimized, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert statement: %w", err)
		}
		defer stmt.Close()

		for i, state := range states {
			if _, err := stmt.Exec(state.ID, state.Title, state.X, state.Y, state.Width, state.Height, state.Minimized, i); err != nil {
				return fmt.Errorf("failed to insert window %s: %w", state.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadWindows returns the persisted windows in saved order
func (db *DB) LoadWindows() ([]types.WindowState, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.conn.Query(`SELECT id, title, x, y, width, height, minimized
		FROM ` + tableWindowState + ` ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query window state: %w", err)
	}
	defer rows.Close()

	states := []types.WindowState{}
	for rows.Next() {
		var state types.WindowState
		if err := rows.Scan(&state.ID, &state.Title, &state.X, &state.Y, &state.Width, &state.Height, &state.Minimized); err != nil {
			return nil, fmt.Errorf("failed to scan window state: %w", err)
		}
		states = append(states, state)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read window state: %w", err)
	}
	return states, nil
}

// SaveIcons replaces the persisted desktop icons, keeping their order
func (db *DB) SaveIcons(icons []types.DesktopIcon) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + tableDesktopIcons); err != nil {
		return fmt.Errorf("failed to clear desktop icons: %w", err)
	}

	if len(icons) > 0 {
		stmt, err := tx.Prepare(`INSERT INTO ` + tableDesktopIcons + `
			(id, title, icon, icon_url, x, y, launch, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert statement: %w", err)
		}
		defer stmt.Close()

		for i, icon := range icons {
			var launch any
			if icon.Launch != nil {
				data, err := json.Marshal(icon.Launch)
				if err != nil {
					return fmt.Errorf("failed to marshal launch of icon %s: %w", icon.ID, err)
				}
				launch = string(data)
			}

			var iconURL any
			if icon.IconURL != "" {
				iconURL = icon.IconURL
			}

			if _, err := stmt.Exec(icon.ID, icon.Title, icon.Icon, iconURL, icon.X, icon.Y, launch, i); err != nil {
				return fmt.Errorf("failed to insert icon %s: %w", icon.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadIcons returns the persisted desktop icons in saved order
func (db *DB) LoadIcons() ([]types.DesktopIcon, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.conn.Query(`SELECT id, title, icon, icon_url, x, y, launch
		FROM ` + tableDesktopIcons + ` ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query desktop icons: %w", err)
	}
	defer rows.Close()

	icons := []types.DesktopIcon{}
	for rows.Next() {
		var icon types.DesktopIcon
		var iconURL, launch sql.NullString
		if err := rows.Scan(&icon.ID, &icon.Title, &icon.Icon, &iconURL, &icon.X, &icon.Y, &launch); err != nil {
			return nil, fmt.Errorf("failed to scan desktop icon: %w", err)
		}
		icon.IconURL = iconURL.String
		if launch.Valid {
			icon.Launch = &types.LaunchSpec{}
			if err := json.Unmarshal([]byte(launch.String), icon.Launch); err != nil {
				return nil, fmt.Errorf("failed to unmarshal launch of icon %s: %w", icon.ID, err)
			}
		}
		icons = append(icons, icon)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read desktop icons: %w", err)
	}
	return icons, nil
}

// SaveSetting stores value as JSON under key
func (db *DB) SaveSetting(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal setting %s: %w", key, err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := db.conn.Exec("INSERT OR REPLACE INTO "+tableSettings+" (key, value) VALUES (?, ?)", key, string(data)); err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}

// GetSetting decodes the setting under key into dest.
// It reports false when the key has never been saved.
func (db *DB) GetSetting(key string, dest any) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var value string
	err := db.conn.QueryRow("SELECT value FROM "+tableSettings+" WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get setting %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(value), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal setting %s: %w", key, err)
	}
	return true, nil
}

// Reset deletes all persisted state
func (db *DB) Reset() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, table := range []string{tableWindowState, tableDesktopIcons, tableSettings} {
		if _, err := db.conn.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}
