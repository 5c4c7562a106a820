// Package storage opens the client's local sqlite database, applies
// migrations, and wires up the repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/messmate/internal/client/migrations"
	"github.com/dmitrijs2005/messmate/internal/client/repositories/cache"
	"github.com/dmitrijs2005/messmate/internal/client/repositories/secrets"
)

// Stores bundles the local repositories sharing one database handle.
type Stores struct {
	Secrets secrets.Repository
	Cache   cache.Repository
	DB      *sql.DB
}

// RunMigrations applies all embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the database at dsn, migrates it, and
// returns the repositories. Secret values are sealed with sealKey.
func Open(ctx context.Context, dsn string, sealKey []byte) (*Stores, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Stores{
		Secrets: secrets.NewSQLiteRepository(db, sealKey),
		Cache:   cache.NewSQLiteRepository(db),
		DB:      db,
	}, nil
}

// Close releases the underlying database handle.
func (s *Stores) Close() error {
	return s.DB.Close()
}
