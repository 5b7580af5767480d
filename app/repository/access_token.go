package repository

import (
	"context"
	"database/sql"

	"github.com/vibast-solutions/ms-go-intent/app/entity"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type AccessTokenRepository struct {
	db DBTX
}

func NewAccessTokenRepository(db DBTX) *AccessTokenRepository {
	return &AccessTokenRepository{db: db}
}

func (r *AccessTokenRepository) Create(ctx context.Context, token *entity.AccessToken) error {
	query := `
		INSERT INTO access_tokens (owner, secret_hash, issued_at, expires_at)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		token.Owner,
		token.SecretHash,
		token.IssuedAt,
		token.ExpiresAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	token.ID = uint64(id)
	return nil
}

// FindBySecretHash returns (nil, nil) when no token matches. Expiry is not
// filtered here so the caller can distinguish an unknown secret from an
// expired one.
func (r *AccessTokenRepository) FindBySecretHash(ctx context.Context, secretHash string) (*entity.AccessToken, error) {
	query := `
		SELECT id, owner, secret_hash, issued_at, expires_at
		FROM access_tokens
		WHERE secret_hash = ?
		LIMIT 1
	`
	token := &entity.AccessToken{}
	row := r.db.QueryRowContext(ctx, query, secretHash)
	if err := row.Scan(
		&token.ID,
		&token.Owner,
		&token.SecretHash,
		&token.IssuedAt,
		&token.ExpiresAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return token, nil
}
