package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/cristianoliveira/pairup/internal/config"
	"github.com/cristianoliveira/pairup/internal/metrics"
	"github.com/cristianoliveira/pairup/internal/storage/redis"
	"github.com/cristianoliveira/pairup/internal/storage/sqlite"
)

const (
	// BackendMemory selects a process-local map. Nothing is persisted.
	BackendMemory = "memory"
	// BackendFile selects the JSON state file.
	BackendFile = "file"
	// BackendSQLite selects SQLite-backed storage.
	BackendSQLite = "sqlite"
	// BackendRedis selects Redis-backed storage.
	BackendRedis = "redis"

	stateDBFileName       = "state.db"
	migrationBackupSuffix = ".sqlite-migration.bak"
)

var (
	_ Store = (*sqlite.SQLiteStore)(nil)
	_ Store = (*redis.Store)(nil)
)

var migrateJSONToSQLite = sqlite.MigrateJSONToSQLite
var rollbackMigration = sqlite.RollbackMigration

// NewFromConfig creates a store for the configured storage_backend.
func NewFromConfig(ctx context.Context, m *metrics.Metrics) (Store, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	backend := config.Get("storage_backend", BackendFile)
	return NewForBackend(ctx, backend, m)
}

// NewForBackend creates a store for the provided backend name. Unknown
// backends and backend init failures fall back to the file store.
func NewForBackend(ctx context.Context, backend string, m *metrics.Metrics) (Store, error) {
	stateDir := GetStateDir()

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendMemory:
		return NewMemoryStore(), nil
	case "", BackendFile:
		return NewFileStore(stateDir)
	case BackendSQLite:
		dbPath := filepath.Join(stateDir, stateDBFileName)
		jsonPath := filepath.Join(stateDir, stateFileName)

		if err := maybeMigrateJSONToSQLite(ctx, jsonPath, dbPath); err != nil {
			colors.Warning(fmt.Sprintf("sqlite migration failed, falling back to file: %v", err))
			return NewFileStore(stateDir)
		}

		s, err := sqlite.NewSQLiteStore(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to file: %v", err))
			return NewFileStore(stateDir)
		}
		return s, nil
	case BackendRedis:
		url := config.Get("redis_url", "redis://localhost:6379/0")
		prefix := config.Get("redis_prefix", "pairup:")

		var s *redis.Store
		var err error
		if m != nil {
			s, err = redis.NewStore(ctx, url, prefix, redis.NewMetricsHook(m))
		} else {
			s, err = redis.NewStore(ctx, url, prefix)
		}
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize redis backend, falling back to file: %v", err))
			return NewFileStore(stateDir)
		}
		return s, nil
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to file", backend))
		return NewFileStore(stateDir)
	}
}

// maybeMigrateJSONToSQLite imports an existing state file the first time the
// sqlite backend is opened.
func maybeMigrateJSONToSQLite(ctx context.Context, jsonPath, sqlitePath string) error {
	dbExists, err := pathExists(sqlitePath)
	if err != nil {
		return fmt.Errorf("check sqlite database path: %w", err)
	}
	if dbExists {
		return nil
	}

	hasData, err := fileHasContent(jsonPath)
	if err != nil {
		return fmt.Errorf("check state file: %w", err)
	}
	if !hasData {
		return nil
	}

	colors.Info("Detected file state. Starting SQLite migration...")
	stats, migrateErr := migrateJSONToSQLite(ctx, sqlite.MigrationOptions{JSONPath: jsonPath, SQLitePath: sqlitePath})
	if migrateErr != nil {
		backupPath := jsonPath + migrationBackupSuffix
		if _, statErr := os.Stat(backupPath); statErr != nil {
			return fmt.Errorf("migrate state to sqlite: %w", migrateErr)
		}
		if rollbackErr := rollbackMigration(jsonPath, sqlitePath, backupPath); rollbackErr != nil {
			return fmt.Errorf("migrate state to sqlite: %w (rollback failed: %v)", migrateErr, rollbackErr)
		}
		return fmt.Errorf("migrate state to sqlite: %w", migrateErr)
	}

	colors.Success(fmt.Sprintf("SQLite migration complete: %d keys migrated", stats.MigratedKeys))
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func fileHasContent(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("expected file but found directory: %s", path)
	}
	return info.Size() > 0, nil
}
