package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeStateFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "state.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMigrateJSONToSQLite(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeStateFile(t, dir, `{"notificationCount":"3","readChats":"[1,4]"}`)
	dbPath := filepath.Join(dir, "state.db")
	ctx := context.Background()

	stats, err := MigrateJSONToSQLite(ctx, MigrationOptions{JSONPath: jsonPath, SQLitePath: dbPath})
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalKeys)
	require.Equal(t, 2, stats.MigratedKeys)
	require.True(t, stats.BackupCreated)
	require.FileExists(t, stats.BackupPath)

	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer s.Close()
	v, ok, err := s.Get(ctx, "readChats")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[1,4]", v)
}

func TestMigrateJSONToSQLiteDryRun(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeStateFile(t, dir, `{"a":"1"}`)
	dbPath := filepath.Join(dir, "state.db")

	stats, err := MigrateJSONToSQLite(context.Background(), MigrationOptions{JSONPath: jsonPath, SQLitePath: dbPath, DryRun: true})
	require.NoError(t, err)
	require.Equal(t, 1, stats.MigratedKeys)
	require.NoFileExists(t, dbPath)
}

func TestMigrateJSONToSQLiteRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeStateFile(t, dir, `not json`)

	_, err := MigrateJSONToSQLite(context.Background(), MigrationOptions{JSONPath: jsonPath, SQLitePath: filepath.Join(dir, "state.db")})
	require.Error(t, err)
}

func TestRollbackMigration(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeStateFile(t, dir, `{"a":"1"}`)
	backup := filepath.Join(dir, "backup.json")
	require.NoError(t, os.WriteFile(backup, []byte(`{"a":"original"}`), 0o644))
	dbPath := filepath.Join(dir, "state.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("partial"), 0o644))

	require.NoError(t, RollbackMigration(jsonPath, dbPath, backup))

	require.NoFileExists(t, dbPath)
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	require.Equal(t, `{"a":"original"}`, string(data))
}
