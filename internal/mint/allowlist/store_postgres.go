package allowlist

import (
	"context"
	"database/sql"
	"fmt"

	"mintgate/pkg/domain"
)

// PostgresStore persists allow-list membership in PostgreSQL so multiple
// instances share one registry.
type PostgresStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS mint_allowlist (
    address    TEXT PRIMARY KEY,
    enabled    BOOLEAN NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// NewPostgres constructs a PostgreSQL-backed allow-list store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the backing table when it does not exist yet. Called
// once at startup; safe to call repeatedly.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure allowlist schema: %w", err)
	}
	return nil
}

// SetMany upserts membership for each address inside one transaction so a
// batch edit is all-or-nothing.
func (s *PostgresStore) SetMany(ctx context.Context, addrs []domain.Address, enabled bool) error {
	if len(addrs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin allowlist update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO mint_allowlist (address, enabled, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (address) DO UPDATE SET enabled = $2, updated_at = now()`)
	if err != nil {
		return fmt.Errorf("prepare allowlist upsert: %w", err)
	}
	defer stmt.Close()

	for _, addr := range addrs {
		if _, err := stmt.ExecContext(ctx, addr.String(), enabled); err != nil {
			return fmt.Errorf("upsert allowlist entry %s: %w", addr, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit allowlist update: %w", err)
	}
	return nil
}

func (s *PostgresStore) IsMember(ctx context.Context, addr domain.Address) (bool, error) {
	var enabled bool
	err := s.db.QueryRowContext(ctx,
		`SELECT enabled FROM mint_allowlist WHERE address = $1`, addr.String(),
	).Scan(&enabled)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check allowlist membership: %w", err)
	}
	return enabled, nil
}

// Members returns the enabled membership set. Admin inspection only.
func (s *PostgresStore) Members(ctx context.Context) ([]domain.Address, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT address FROM mint_allowlist WHERE enabled ORDER BY address`)
	if err != nil {
		return nil, fmt.Errorf("list allowlist members: %w", err)
	}
	defer rows.Close()

	var out []domain.Address
	for rows.Next() {
		var addr string
		if err := rows.Scan(&addr); err != nil {
			return nil, fmt.Errorf("scan allowlist member: %w", err)
		}
		out = append(out, domain.Address(addr))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate allowlist members: %w", err)
	}
	return out, nil
}
