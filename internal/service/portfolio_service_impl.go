package service

import (
	"context"

	"github.com/mhagelund/folio/internal/model"
	"github.com/mhagelund/folio/internal/repository"
)

// portfolioServiceImpl is the production implementation of PortfolioService.
type portfolioServiceImpl struct {
	repo repository.ProjectRepository
}

// NewPortfolioService creates a PortfolioService backed by the given repository.
func NewPortfolioService(repo repository.ProjectRepository) PortfolioService {
	return &portfolioServiceImpl{repo: repo}
}

func (s *portfolioServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.repo.List(ctx)
}

func (s *portfolioServiceImpl) Create(ctx context.Context, p *model.Project) error {
	return s.repo.Create(ctx, p)
}

func (s *portfolioServiceImpl) Update(ctx context.Context, id int64, title, description string) error {
	return s.repo.Update(ctx, id, title, description)
}

func (s *portfolioServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
