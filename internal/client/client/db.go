package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/onetap/internal/client/migrations"
	"github.com/dmitrijs2005/onetap/internal/client/repositories/accounts"
)

// Store is the opened keyring database with its repositories.
type Store struct {
	DB       *sql.DB
	Accounts accounts.Repository
}

// InTx runs fn with an accounts repository bound to one transaction.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, repo accounts.Repository) error) error {
	return accounts.InTx(ctx, s.DB, fn)
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func InitDatabase(ctx context.Context, dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, ErrEmptyDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocalDataNotAvailable, err)
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY between
	// the REPL and a running attempt.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrLocalDataNotAvailable, err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		DB:       db,
		Accounts: accounts.NewSQLiteRepository(db),
	}, nil
}
