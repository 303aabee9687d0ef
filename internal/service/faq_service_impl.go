package service

import (
	"context"

	"github.com/mhagelund/folio/internal/model"
	"github.com/mhagelund/folio/internal/repository"
)

// faqServiceImpl is the production implementation of FaqService.
type faqServiceImpl struct {
	repo repository.QuestionRepository
}

// NewFaqService creates a FaqService backed by the given repository.
func NewFaqService(repo repository.QuestionRepository) FaqService {
	return &faqServiceImpl{repo: repo}
}

func (s *faqServiceImpl) List(ctx context.Context) ([]*model.Question, error) {
	return s.repo.List(ctx)
}

func (s *faqServiceImpl) Ask(ctx context.Context, question string) error {
	return s.repo.Create(ctx, &model.Question{Question: question})
}

func (s *faqServiceImpl) Answer(ctx context.Context, id int64, answer string) error {
	return s.repo.SetAnswer(ctx, id, answer)
}

func (s *faqServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
