package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"appswitch/internal/models"
	"appswitch/pkg/global"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS switches (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp DATETIME NOT NULL,
    fragment TEXT NOT NULL,
    owner_name TEXT NOT NULL,
    pid INTEGER NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// New opens the switch-history database at its default location.
func New() (*DB, error) {
	// Get user config directory
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user config directory: %w", err)
	}

	// Ensure directory exists
	dbDir := filepath.Join(configDir, "appswitch")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	return Open(filepath.Join(dbDir, "history.db"))
}

// Open opens or creates the switch-history database at the given path.
func Open(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Create schema
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) AddSwitch(entry models.SwitchEntry) error {
	query := `
		INSERT INTO switches (timestamp, fragment, owner_name, pid)
		VALUES (?, ?, ?, ?)
	`

	_, err := d.db.Exec(query,
		entry.Timestamp, entry.Fragment, entry.OwnerName, entry.PID)
	if err != nil {
		return fmt.Errorf("failed to insert switch entry: %w", err)
	}

	return nil
}

// RecentSwitches returns the latest entries, newest first.
func (d *DB) RecentSwitches(limit int) ([]models.SwitchEntry, error) {
	log := global.GetLogger()
	log.Debug("Retrieving switch history", "limit", limit)

	query := `
        SELECT timestamp, fragment, owner_name, pid
        FROM switches
        ORDER BY timestamp DESC
        LIMIT ?
    `

	rows, err := d.db.Query(query, limit)
	if err != nil {
		log.Error("Failed to query switch history", err)
		return nil, fmt.Errorf("failed to query switch history: %w", err)
	}
	defer rows.Close()

	var entries []models.SwitchEntry
	for rows.Next() {
		var entry models.SwitchEntry
		if err := rows.Scan(&entry.Timestamp, &entry.Fragment, &entry.OwnerName, &entry.PID); err != nil {
			log.Error("Failed to scan switch entry", err)
			return nil, fmt.Errorf("failed to scan switch entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read switch history: %w", err)
	}

	log.Debug("Switch history retrieved", "count", len(entries))
	return entries, nil
}

// Cleanup removes entries whose switch timestamp is older than the given
// duration.
func (d *DB) Cleanup(olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	_, err := d.db.Exec("DELETE FROM switches WHERE timestamp < ?", cutoff)
	if err != nil {
		return fmt.Errorf("failed to cleanup old switch entries: %w", err)
	}
	return nil
}
