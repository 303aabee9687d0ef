package repository

import (
	"context"

	"github.com/mhagelund/folio/internal/model"
)

// QuestionRepository defines persistence for FAQ questions.
type QuestionRepository interface {
	List(ctx context.Context) ([]*model.Question, error)
	Create(ctx context.Context, q *model.Question) error
	SetAnswer(ctx context.Context, id int64, answer string) error
	Delete(ctx context.Context, id int64) error
}
