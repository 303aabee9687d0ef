package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mhagelund/folio/internal/model"
)

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

// List returns all projects, most recently created first.
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, image, created_at, updated_at
		 FROM portfolio ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

func (r *PgProjectRepository) FindByID(ctx context.Context, id int64) (*model.Project, error) {
	var p model.Project
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, image, created_at, updated_at
		 FROM portfolio WHERE id = $1`, id,
	).Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new portfolio row. The generated id is not read back;
// callers only care about success or failure.
func (r *PgProjectRepository) Create(ctx context.Context, p *model.Project) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO portfolio (title, description, image) VALUES ($1, $2, $3)`,
		p.Title, p.Description, p.Image)
	return err
}

// Update changes title and description only. The image is immutable after
// creation. A missing id is a no-op, not an error.
func (r *PgProjectRepository) Update(ctx context.Context, id int64, title, description string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE portfolio SET title = $1, description = $2, updated_at = NOW() WHERE id = $3`,
		title, description, id)
	return err
}

// Delete removes a project. A missing id is a no-op, not an error.
func (r *PgProjectRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM portfolio WHERE id = $1`, id)
	return err
}
