package account

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	storage "github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/storage"
	domain "github.com/ZetaGo-Aurum/YouTube-Clone/internal/domain/account"
)

type sqliteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore returns a Store backed by SQLite.
func NewSQLiteStore(db storage.SQLDB) Store {
	return &sqliteStore{db: db}
}

// Save inserts or replaces an Account.
// PRE: a.ID is non-empty; a.Email is unique among other accounts
func (s *sqliteStore) Save(ctx context.Context, a domain.Account) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO account (id, email, password_hash, created_at)
		VALUES (?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			password_hash = excluded.password_hash`,
		a.ID,
		a.Email,
		a.PasswordHash,
		a.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("account save: %w", err)
	}
	return nil
}

// GetByID retrieves an Account by its ID.
func (s *sqliteStore) GetByID(ctx context.Context, id string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at
		FROM account WHERE id = ?`, id)
	return scanAccount(row)
}

// GetByEmail retrieves an Account by email.
func (s *sqliteStore) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at
		FROM account WHERE email = ?`, email)
	return scanAccount(row)
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account
	var createdAt string
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &createdAt)
	if err == sql.ErrNoRows {
		return domain.Account{}, err
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("account get: %w", err)
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return a, nil
}
