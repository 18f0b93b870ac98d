package database

import (
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func (s *DB) runMigrations() error {
	log := s.log.Function("runMigrations")

	sqlDB, err := s.SQL.DB()
	if err != nil {
		return log.Err("failed to get database handle for migrations", err)
	}

	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations",
	}

	applied, err := migrate.Exec(sqlDB, "sqlite3", source, migrate.Up)
	if err != nil {
		return log.Err("failed to apply migrations", err)
	}

	log.Info("Applied migrations", "count", applied)
	return nil
}
