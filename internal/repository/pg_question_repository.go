package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mhagelund/folio/internal/model"
)

// PgQuestionRepository is the PostgreSQL implementation of QuestionRepository.
type PgQuestionRepository struct {
	pool *pgxpool.Pool
}

// NewPgQuestionRepository creates a PgQuestionRepository backed by the given pool.
func NewPgQuestionRepository(pool *pgxpool.Pool) *PgQuestionRepository {
	return &PgQuestionRepository{pool: pool}
}

var _ QuestionRepository = (*PgQuestionRepository)(nil)

// List returns all questions, most recently asked first. The answer column is
// nullable in the database; an unanswered question scans as the empty string.
func (r *PgQuestionRepository) List(ctx context.Context) ([]*model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question, COALESCE(answer, ''), created_at, updated_at
		 FROM question ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, &q)
	}
	return questions, rows.Err()
}

func (r *PgQuestionRepository) Create(ctx context.Context, q *model.Question) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO question (question) VALUES ($1)`, q.Question)
	return err
}

// SetAnswer stores or overwrites the admin answer. Missing id is a no-op.
func (r *PgQuestionRepository) SetAnswer(ctx context.Context, id int64, answer string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE question SET answer = $1, updated_at = NOW() WHERE id = $2`,
		answer, id)
	return err
}

// Delete removes a question. Missing id is a no-op.
func (r *PgQuestionRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM question WHERE id = $1`, id)
	return err
}
