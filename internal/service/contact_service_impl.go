package service

import (
	"context"

	"github.com/mhagelund/folio/internal/model"
	"github.com/mhagelund/folio/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit stores a new contact message. The status is always forced to "new"
// regardless of what the caller set.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.Status = model.StatusNew
	return s.repo.Create(ctx, msg)
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx)
}

// Answer stores the reply and marks the message answered in one statement.
func (s *contactServiceImpl) Answer(ctx context.Context, id int64, answer string) error {
	return s.repo.Answer(ctx, id, answer, model.StatusAnswered)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
