package repository

import (
	"context"

	"github.com/mhagelund/folio/internal/model"
)

// ProjectRepository defines persistence for portfolio projects.
// List returns projects newest-first; the ordering is part of the contract,
// not something callers are expected to fix up afterwards.
type ProjectRepository interface {
	List(ctx context.Context) ([]*model.Project, error)
	FindByID(ctx context.Context, id int64) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, id int64, title, description string) error
	Delete(ctx context.Context, id int64) error
}
