package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mhagelund/folio/internal/model"
)

type pgSessionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSessionRepository returns a PostgreSQL-backed SessionRepository.
func NewPgSessionRepository(pool *pgxpool.Pool) SessionRepository {
	return &pgSessionRepository{pool: pool}
}

func (r *pgSessionRepository) Create(ctx context.Context, s *model.Session) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO sessions (token, logged_in, csrf_secret, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.Token, s.LoggedIn, s.CSRFSecret, s.CreatedAt, s.ExpiresAt)
	return err
}

func (r *pgSessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	s := &model.Session{}
	err := r.pool.QueryRow(ctx,
		`SELECT token, logged_in, csrf_secret, created_at, expires_at
		 FROM sessions WHERE token = $1`, token,
	).Scan(&s.Token, &s.LoggedIn, &s.CSRFSecret, &s.CreatedAt, &s.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *pgSessionRepository) SetLoggedIn(ctx context.Context, token string, loggedIn bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE sessions SET logged_in = $1 WHERE token = $2`, loggedIn, token)
	return err
}

func (r *pgSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}
