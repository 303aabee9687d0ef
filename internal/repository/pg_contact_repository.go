package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mhagelund/folio/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// List returns all contact messages, most recent first.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, message, COALESCE(answer, ''), status, created_at, updated_at
		 FROM contact ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message,
			&m.Answer, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

func (r *PgContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact (name, email, phone, message, status)
		 VALUES ($1, $2, $3, $4, $5)`,
		msg.Name, msg.Email, msg.Phone, msg.Message, msg.Status)
	return err
}

// Answer stores the admin reply and the new status in one statement.
// Missing id is a no-op.
func (r *PgContactRepository) Answer(ctx context.Context, id int64, answer, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE contact SET answer = $1, status = $2, updated_at = NOW() WHERE id = $3`,
		answer, status, id)
	return err
}

// Delete removes a contact message. Missing id is a no-op.
func (r *PgContactRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM contact WHERE id = $1`, id)
	return err
}
