package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/onetap/internal/client/models"
	"github.com/dmitrijs2005/onetap/internal/common"
	"github.com/dmitrijs2005/onetap/internal/dbx"
)

const accountColumns = `id, client_id, subject, email, name, id_token, authorized, created_at, last_used_at`

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

// InTx runs fn with a repository bound to one transaction on db.
func InTx(ctx context.Context, db dbx.TxBeginner, fn func(ctx context.Context, repo Repository) error) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewSQLiteRepository(tx))
	})
}

func (r *SQLiteRepository) Upsert(ctx context.Context, a models.Account) (models.Account, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = r.now()
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO accounts (id, client_id, subject, email, name, id_token, authorized, created_at, last_used_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(client_id, subject) DO UPDATE SET
			email = excluded.email,
			name = excluded.name,
			id_token = excluded.id_token
		RETURNING `+accountColumns,
		a.ID, a.ClientID, a.Subject, a.Email, a.Name, a.IDToken,
		boolToInt(a.Authorized), formatTime(a.CreatedAt), formatTimePtr(a.LastUsedAt))

	stored, err := scanAccount(row)
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to upsert account %s/%s: %w", a.ClientID, a.Subject, err)
	}
	return stored, nil
}

func (r *SQLiteRepository) List(ctx context.Context, clientID string, onlyAuthorized bool) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE client_id = ?`
	if onlyAuthorized {
		query += ` AND authorized = 1`
	}
	query += ` ORDER BY last_used_at IS NULL, last_used_at DESC, created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var result []models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (models.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, fmt.Errorf("account %s: %w", id, common.ErrorNotFound)
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to get account %s: %w", id, err)
	}
	return a, nil
}

func (r *SQLiteRepository) MarkUsed(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET authorized = 1, last_used_at = ? WHERE id = ?`, formatTime(at), id)
	if err != nil {
		return fmt.Errorf("failed to mark account %s used: %w", id, err)
	}
	return expectOneRow(res, id)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", id, err)
	}
	return expectOneRow(res, id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (models.Account, error) {
	var (
		a          models.Account
		authorized int
		createdAt  string
		lastUsedAt sql.NullString
	)
	if err := s.Scan(&a.ID, &a.ClientID, &a.Subject, &a.Email, &a.Name, &a.IDToken,
		&authorized, &createdAt, &lastUsedAt); err != nil {
		return models.Account{}, err
	}
	a.Authorized = authorized != 0

	var err error
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.Account{}, err
	}
	if lastUsedAt.Valid {
		t, err := parseTime(lastUsedAt.String)
		if err != nil {
			return models.Account{}, err
		}
		a.LastUsedAt = &t
	}
	return a, nil
}

func expectOneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("account %s: %w", id, common.ErrorNotFound)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q: %w", s, err)
	}
	return t, nil
}
