package storage

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver
	"github.com/jmoiron/sqlx"
	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	_ "modernc.org/sqlite"                               // Local SQLite driver
)

// Supported driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
	DriverLibSQL   = "libsql"
)

// Options control the connection pool.
type Options struct {
	MaxOpenConns int
	MaxIdleConns int
}

// Open connects to the database, applies pool limits and runs migrations.
// An empty driver is inferred from the DSN.
func Open(ctx context.Context, driver, dsn string, opts Options) (*sqlx.DB, error) {
	if driver == "" {
		driver = DriverFromDSN(dsn)
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if driver == DriverPostgres {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxIdleConns)
	} else {
		// sqlite serializes writers; one connection keeps in-memory databases shared too.
		db.SetMaxOpenConns(1)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// DriverFromDSN picks a driver the same way for config files and tests.
func DriverFromDSN(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(dsn, "libsql://"), strings.HasPrefix(dsn, "wss://"):
		return DriverLibSQL
	default:
		return DriverSQLite
	}
}

// Migrate creates the users, categories and links tables when missing.
// links.category_id deliberately carries no foreign key: category deletion
// detaches links explicitly in the same transaction.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	stmts := sqliteSchema
	if db.DriverName() == DriverPostgres {
		stmts = postgresSchema
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		color VARCHAR(7) NOT NULL DEFAULT '#3b82f6',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_categories_user_id ON categories(user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS links (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		category_id UUID NULL,
		title VARCHAR(255) NOT NULL,
		url TEXT NOT NULL,
		description TEXT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_links_user_id ON links(user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_links_category_id ON links(user_id, category_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '#3b82f6',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_categories_user_id ON categories(user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS links (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		category_id TEXT NULL,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		description TEXT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_links_user_id ON links(user_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_links_category_id ON links(user_id, category_id)`,
}
