package secrets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/messmate/internal/cryptox"
	"github.com/dmitrijs2005/messmate/internal/dbx"
)

// SQLiteRepository seals values with AES-GCM before they reach the secrets
// table and opens them on the way back. The seal key never hits disk.
type SQLiteRepository struct {
	db      dbx.DBTX
	sealKey []byte
}

func NewSQLiteRepository(db dbx.DBTX, sealKey []byte) *SQLiteRepository {
	return &SQLiteRepository{db: db, sealKey: sealKey}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value, nonce []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value, nonce FROM secrets WHERE key = ?`, key).Scan(&value, &nonce)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get secret[%s]: %w", key, err)
	}

	plaintext, err := cryptox.Open(value, nonce, r.sealKey)
	if err != nil {
		return nil, fmt.Errorf("failed to open secret[%s]: %w", key, err)
	}
	return plaintext, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	sealed, nonce, err := cryptox.Seal(value, r.sealKey)
	if err != nil {
		return fmt.Errorf("failed to seal secret[%s]: %w", key, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO secrets (key, value, nonce) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, nonce = excluded.nonce
	`, key, sealed, nonce)
	if err != nil {
		return fmt.Errorf("failed to set secret[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM secrets WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete secret[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM secrets`)
	if err != nil {
		return fmt.Errorf("failed to clear secrets: %w", err)
	}
	return nil
}
