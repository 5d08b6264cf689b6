package blogs

import (
	"context"

	"github.com/Sadia492/portfolio-server/internal/server/models"
)

type Repository interface {
	// ListPublished returns published posts, newest first.
	ListPublished(ctx context.Context) ([]*models.Blog, error)
	// ListAll returns every post, including unpublished ones, newest first.
	ListAll(ctx context.Context) ([]*models.Blog, error)
	// GetByIDOrSlug looks a post up by primary key or by slug.
	GetByIDOrSlug(ctx context.Context, key string) (*models.Blog, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	Delete(ctx context.Context, id string) error
}
