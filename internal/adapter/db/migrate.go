package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationFiles embed.FS

const createMigrationsTableQuery = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version VARCHAR(255) NOT NULL PRIMARY KEY,
  applied_at DATETIME NOT NULL
);
`

// Migrate applies the embedded *.up.sql files for the connection's driver that
// are not yet recorded in schema_migrations. It returns the applied versions.
func Migrate(ctx context.Context, db *sqlx.DB) ([]string, error) {
	dir := path.Join("migrations", db.DriverName())
	entries, err := fs.ReadDir(migrationFiles, dir)
	if err != nil {
		return nil, fmt.Errorf("no migrations for driver %q: %w", db.DriverName(), err)
	}

	if _, err := db.ExecContext(ctx, createMigrationsTableQuery); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	var done []string
	if err := db.SelectContext(ctx, &done, "SELECT version FROM schema_migrations"); err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	applied := make(map[string]struct{}, len(done))
	for _, version := range done {
		applied[version] = struct{}{}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var versions []string
	for _, name := range names {
		version := strings.TrimSuffix(name, ".up.sql")
		if _, ok := applied[version]; ok {
			continue
		}

		content, err := fs.ReadFile(migrationFiles, path.Join(dir, name))
		if err != nil {
			return versions, err
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return versions, fmt.Errorf("apply migration %s: %w", version, err)
		}
		if _, err := db.ExecContext(
			ctx,
			"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)",
			version,
			time.Now().UTC(),
		); err != nil {
			return versions, fmt.Errorf("record migration %s: %w", version, err)
		}

		zap.L().Info("applied migration", zap.String("version", version))
		versions = append(versions, version)
	}

	return versions, nil
}
