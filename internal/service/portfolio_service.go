package service

import (
	"context"

	"github.com/mhagelund/folio/internal/model"
)

// PortfolioService defines the business logic for portfolio projects.
type PortfolioService interface {
	// List returns all projects, most recently created first.
	List(ctx context.Context) ([]*model.Project, error)

	// Create stores a new project. The image filename must already be set.
	Create(ctx context.Context, p *model.Project) error

	// Update changes a project's title and description. Updating a
	// nonexistent id succeeds as a no-op.
	Update(ctx context.Context, id int64, title, description string) error

	// Delete removes a project. Deleting a nonexistent id succeeds as a no-op.
	Delete(ctx context.Context, id int64) error
}
