// Package postgres implements the labpool Store on top of a single Postgres
// table, accessed through the pgx stdlib driver. Each operation is a single
// statement: no transactions are taken around account read-modify-write
// sequences, so the last-write-wins semantics of the cache contract carry
// over unchanged.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/labpool/internal/common"
	"github.com/dmitrijs2005/labpool/internal/dbx"
	"github.com/dmitrijs2005/labpool/internal/store/postgres/migrations"
)

type Store struct {
	db dbx.DBTX
}

func New(db dbx.DBTX) *Store {
	return &Store{db: db}
}

// Open connects to Postgres, runs pending migrations and returns a ready
// Store together with the underlying handle (for closing).
func Open(ctx context.Context, dsn string) (*Store, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	return New(db), db, nil
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return err
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	query :=
		`SELECT value FROM account_records
		 WHERE key = $1
		 `

	var value []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	query :=
		`INSERT INTO account_records (key, value)
		 VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		 `

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (s *Store) Del(ctx context.Context, key string) error {
	query :=
		`DELETE FROM account_records
		 WHERE key = $1
		 `

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
