package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
)

type RefreshTokenRepository interface {
	// Save stores the user's refresh token, replacing any previous one.
	Save(ctx context.Context, token *model.RefreshToken) error
	FindByToken(ctx context.Context, token string) (*model.RefreshToken, error)
	// DeleteByToken is idempotent: deleting an absent token is not an error.
	DeleteByToken(ctx context.Context, token string) error
}

type pgRefreshTokenRepository struct {
	db *sql.DB
}

func NewPgRefreshTokenRepository(db *sql.DB) RefreshTokenRepository {
	return &pgRefreshTokenRepository{db: db}
}

func (r *pgRefreshTokenRepository) Save(ctx context.Context, token *model.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (user_id, token, expires_at)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (user_id)
	          DO UPDATE SET token = $2, expires_at = $3, created_at = CURRENT_TIMESTAMP`
	_, err := r.db.ExecContext(ctx, query, token.UserID, token.Token, token.ExpiresAt)
	if err != nil {
		return fmt.Errorf("pgRefreshTokenRepository.Save: %w", err)
	}
	return nil
}

func (r *pgRefreshTokenRepository) FindByToken(ctx context.Context, tokenString string) (*model.RefreshToken, error) {
	query := `SELECT user_id, token, expires_at, created_at
	          FROM refresh_tokens WHERE token = $1`
	token := &model.RefreshToken{}
	err := r.db.QueryRowContext(ctx, query, tokenString).Scan(
		&token.UserID, &token.Token, &token.ExpiresAt, &token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgRefreshTokenRepository.FindByToken: %w", err)
	}
	return token, nil
}

func (r *pgRefreshTokenRepository) DeleteByToken(ctx context.Context, tokenString string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, tokenString)
	if err != nil {
		return fmt.Errorf("pgRefreshTokenRepository.DeleteByToken: %w", err)
	}
	return nil
}
