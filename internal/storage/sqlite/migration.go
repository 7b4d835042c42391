package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// MigrationOptions configures JSON state file to SQLite migration behavior.
type MigrationOptions struct {
	JSONPath   string
	SQLitePath string
	BackupPath string
	DryRun     bool
}

// MigrationStats summarizes a migration run.
type MigrationStats struct {
	TotalKeys     int
	MigratedKeys  int
	BackupCreated bool
	BackupPath    string
}

// MigrateJSONToSQLite imports every key of a file-backend state file into SQLite.
//
// In non-dry-run mode a backup of the JSON file is written before any SQLite
// writes, and all rows are inserted in a single transaction. Re-running the
// migration is idempotent because rows are upserted by key.
func MigrateJSONToSQLite(ctx context.Context, opts MigrationOptions) (MigrationStats, error) {
	stats := MigrationStats{}

	if strings.TrimSpace(opts.JSONPath) == "" {
		return stats, fmt.Errorf("migration: json path cannot be empty")
	}
	if strings.TrimSpace(opts.SQLitePath) == "" {
		return stats, fmt.Errorf("migration: sqlite path cannot be empty")
	}

	raw, err := os.ReadFile(opts.JSONPath)
	if err != nil {
		return stats, fmt.Errorf("migration: read state file: %w", err)
	}
	data := make(map[string]string)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			return stats, fmt.Errorf("migration: parse state file: %w", err)
		}
	}
	stats.TotalKeys = len(data)

	if opts.DryRun {
		stats.MigratedKeys = len(data)
		return stats, nil
	}

	backupPath := strings.TrimSpace(opts.BackupPath)
	if backupPath == "" {
		backupPath = opts.JSONPath + ".sqlite-migration.bak"
	}
	if err := copyFile(opts.JSONPath, backupPath); err != nil {
		return stats, fmt.Errorf("migration: create backup: %w", err)
	}
	stats.BackupCreated = true
	stats.BackupPath = backupPath

	s, err := NewSQLiteStore(opts.SQLitePath)
	if err != nil {
		return stats, fmt.Errorf("migration: open sqlite storage: %w", err)
	}
	defer s.Close()

	if err := s.importAll(ctx, data); err != nil {
		return stats, err
	}
	stats.MigratedKeys = len(data)
	return stats, nil
}

// RollbackMigration removes a partially written SQLite database and restores
// the JSON file from its backup.
func RollbackMigration(jsonPath, sqlitePath, backupPath string) error {
	if strings.TrimSpace(jsonPath) == "" || strings.TrimSpace(backupPath) == "" {
		return fmt.Errorf("rollback: json and backup paths are required")
	}
	if err := os.Remove(sqlitePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("rollback: remove sqlite db: %w", err)
	}
	if err := copyFile(backupPath, jsonPath); err != nil {
		return fmt.Errorf("rollback: restore state file: %w", err)
	}
	return nil
}

func (s *SQLiteStore) importAll(ctx context.Context, data map[string]string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migration: begin transaction: %w", err)
	}
	defer tx.Rollback()

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	now := utcNow()
	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, upsertSQL, k, data[k], now); err != nil {
			return fmt.Errorf("migration: upsert %q: %w", k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migration: commit: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
