package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	lockPrefix         = "toefl_documents:"
	lockTimeoutSeconds = 10
)

// mysqlBackend keeps every document as one row of the documents table
type mysqlBackend struct {
	db *sql.DB
}

// NewMySQLBackend creates a MySQL backend. Writers are serialized with named
// MySQL locks, so several servers can share one database.
func NewMySQLBackend(db *sql.DB) Backend {
	return &mysqlBackend{
		db: db,
	}
}

// Read returns the stored document body or nil if the row does not exist
func (b *mysqlBackend) Read(ctx context.Context, name string) ([]byte, error) {
	query := `SELECT body FROM documents WHERE name = ?`

	var body string
	err := b.db.QueryRowContext(ctx, query, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	return []byte(body), nil
}

// Lock takes the named MySQL lock of the document on a dedicated connection.
// The lock lives as long as the connection, so unlock releases it and returns the connection to the pool.
func (b *mysqlBackend) Lock(ctx context.Context, name string) (func(), error) {
	conn, err := b.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}

	var acquired sql.NullInt64
	err = conn.QueryRowContext(ctx, `SELECT GET_LOCK(?, ?)`, lockPrefix+name, lockTimeoutSeconds).Scan(&acquired)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired.Valid || acquired.Int64 != 1 {
		conn.Close()
		return nil, fmt.Errorf("timed out waiting for lock on %s", name)
	}

	return func() {
		conn.ExecContext(context.Background(), `DO RELEASE_LOCK(?)`, lockPrefix+name)
		conn.Close()
	}, nil
}

// Write upserts the document body
func (b *mysqlBackend) Write(ctx context.Context, name string, data []byte) error {
	query := `
		INSERT INTO documents (name, body)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE body = VALUES(body)
	`

	if _, err := b.db.ExecContext(ctx, query, name, string(data)); err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}
	return nil
}

// OpenMySQL connects to the database
func OpenMySQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// RunMigrations applies the embedded migrations to the database
func RunMigrations(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	driver, err := migratemysql.WithInstance(db, &migratemysql.Config{
		MigrationsTable: "toefl_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
