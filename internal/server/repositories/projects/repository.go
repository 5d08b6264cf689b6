package projects

import (
	"context"

	"github.com/Sadia492/portfolio-server/internal/server/models"
)

type Repository interface {
	// List returns every project, newest first.
	List(ctx context.Context) ([]*models.Project, error)
	// GetByIDOrSlug looks a project up by primary key or by slug.
	GetByIDOrSlug(ctx context.Context, key string) (*models.Project, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}
