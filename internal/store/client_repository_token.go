// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/okto-client/internal/logger"
)

const (
	kvTable      = "kv"
	authTokenKey = "auth_token"
)

type tokenRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	now     func() time.Time
	logger  *logger.Logger
}

// NewTokenRepository returns a [TokenRepository] that keeps the token under
// the auth_token key of the kv table.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	return &tokenRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now:     time.Now,
		logger:  logger,
	}
}

func (r *tokenRepository) LoadToken(ctx context.Context) (string, error) {
	query, args, err := r.builder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": authTokenKey}).
		ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "tokenRepository.LoadToken").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "tokenRepository.LoadToken").Msg("error loading token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if token == "" {
		return "", ErrTokenNotFound
	}

	return token, nil
}

func (r *tokenRepository) SaveToken(ctx context.Context, token string) error {
	query, args, err := r.builder.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(authTokenKey, token, r.now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "tokenRepository.SaveToken").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "tokenRepository.SaveToken").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *tokenRepository) DeleteToken(ctx context.Context) error {
	query, args, err := r.builder.
		Delete(kvTable).
		Where(sq.Eq{"key": authTokenKey}).
		ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "tokenRepository.DeleteToken").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "tokenRepository.DeleteToken").Msg("error deleting token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
