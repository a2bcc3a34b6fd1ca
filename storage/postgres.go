package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	getItemQuery = `SELECT value FROM storage_items WHERE key = $1`
	setItemQuery = `INSERT INTO storage_items (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

type PostgresStorage struct {
	connPool     *pgxpool.Pool
	dbSource     string
	migrationURL string

	mu          sync.Mutex
	initialized bool
}

// NewPostgresStorage creates the connection pool. The schema is only touched
// by Initialize.
func NewPostgresStorage(ctx context.Context, dbSource, migrationURL string) (*PostgresStorage, error) {
	connPool, err := pgxpool.New(ctx, dbSource)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the database: %w", err)
	}

	return &PostgresStorage{
		connPool:     connPool,
		dbSource:     dbSource,
		migrationURL: migrationURL,
	}, nil
}

// Initialize runs the migrations the first time it succeeds; later calls return
// immediately. Migrations are idempotent, so a failed attempt is simply retried
// on the next request.
func (s *PostgresStorage) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := s.connPool.Ping(ctx); err != nil {
		return fmt.Errorf("cannot reach the database: %w", err)
	}

	if err := runDBMigration(s.migrationURL, s.dbSource); err != nil {
		return err
	}

	s.initialized = true
	return nil
}

func runDBMigration(migrationURL string, dbSource string) error {
	mig, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return fmt.Errorf("cannot create new migrate instance: %w", err)
	}
	defer mig.Close()

	if err = mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrate up: %w", err)
	}

	return nil
}

func (s *PostgresStorage) GetItem(ctx context.Context, key string) (string, error) {
	var value string
	err := s.connPool.QueryRow(ctx, getItemQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrItemNotFound
		}
		return "", fmt.Errorf("failed to get item %q: %w", key, err)
	}

	return value, nil
}

func (s *PostgresStorage) SetItem(ctx context.Context, key, value string) error {
	if _, err := s.connPool.Exec(ctx, setItemQuery, key, value); err != nil {
		return fmt.Errorf("failed to set item %q: %w", key, err)
	}

	return nil
}

func (s *PostgresStorage) Close() {
	s.connPool.Close()
}
