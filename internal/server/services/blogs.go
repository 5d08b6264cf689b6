package services

import (
	"context"
	"database/sql"

	"github.com/Sadia492/portfolio-server/internal/common"
	"github.com/Sadia492/portfolio-server/internal/server/config"
	"github.com/Sadia492/portfolio-server/internal/server/models"
	"github.com/Sadia492/portfolio-server/internal/server/repositories/repomanager"
	"github.com/Sadia492/portfolio-server/internal/slugx"
)

// CreateBlogInput carries the caller-supplied fields for a new post.
type CreateBlogInput struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	Published bool   `json:"published"`
}

// UpdateBlogInput carries a partial update; nil fields are left unchanged.
type UpdateBlogInput struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Excerpt   *string `json:"excerpt"`
	Published *bool   `json:"published"`
}

// BlogService implements the blog content rules: slug derivation and
// uniqueness pre-checks, published filtering, and author ownership gates on
// every mutation.
type BlogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBlogService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *BlogService {
	return &BlogService{db: db, repomanager: m}
}

// ListPublished returns published posts, newest first. Public surface.
func (s *BlogService) ListPublished(ctx context.Context) ([]*models.Blog, error) {
	return s.repomanager.Blogs(s.db).ListPublished(ctx)
}

// ListAll returns every post including unpublished drafts. Owner surface.
func (s *BlogService) ListAll(ctx context.Context) ([]*models.Blog, error) {
	return s.repomanager.Blogs(s.db).ListAll(ctx)
}

// Get looks a post up by id or slug. Unless includeUnpublished is set,
// drafts behave as if they do not exist.
func (s *BlogService) Get(ctx context.Context, key string, includeUnpublished bool) (*models.Blog, error) {
	blog, err := s.repomanager.Blogs(s.db).GetByIDOrSlug(ctx, key)
	if err != nil {
		return nil, err
	}

	if !blog.Published && !includeUnpublished {
		return nil, common.ErrorNotFound
	}

	return blog, nil
}

// Create validates the input, derives the slug and inserts the post. The
// slug existence pre-check runs as a separate read before the write; the
// remaining race is closed by the unique index, which surfaces as the same
// ErrorAlreadyExists.
func (s *BlogService) Create(ctx context.Context, authorID string, in CreateBlogInput) (*models.Blog, error) {

	if in.Title == "" || in.Content == "" {
		return nil, invalid("Title and content are required")
	}
	if len(in.Title) < 3 {
		return nil, invalid("Title must be at least 3 characters long")
	}

	repo := s.repomanager.Blogs(s.db)

	slug := slugx.Make(in.Title)
	exists, err := repo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrorAlreadyExists
	}

	blog := &models.Blog{
		Title:     in.Title,
		Slug:      slug,
		Content:   in.Content,
		Excerpt:   in.Excerpt,
		Published: in.Published,
		AuthorID:  authorID,
	}

	return repo.Create(ctx, blog)
}

// Update applies a partial update to the post identified by id or slug.
// Only the author may update a post; a title change re-derives the slug.
func (s *BlogService) Update(ctx context.Context, key, actorID string, in UpdateBlogInput) (*models.Blog, error) {
	repo := s.repomanager.Blogs(s.db)

	blog, err := repo.GetByIDOrSlug(ctx, key)
	if err != nil {
		return nil, err
	}
	if blog.AuthorID != actorID {
		return nil, common.ErrorForbidden
	}

	if in.Title != nil && *in.Title != blog.Title {
		if len(*in.Title) < 3 {
			return nil, invalid("Title must be at least 3 characters long")
		}
		blog.Title = *in.Title
		blog.Slug = slugx.Make(*in.Title)
	}
	if in.Content != nil {
		blog.Content = *in.Content
	}
	if in.Excerpt != nil {
		blog.Excerpt = *in.Excerpt
	}
	if in.Published != nil {
		blog.Published = *in.Published
	}

	return repo.Update(ctx, blog)
}

// Delete removes the post identified by id or slug. Author only.
func (s *BlogService) Delete(ctx context.Context, key, actorID string) error {
	repo := s.repomanager.Blogs(s.db)

	blog, err := repo.GetByIDOrSlug(ctx, key)
	if err != nil {
		return err
	}
	if blog.AuthorID != actorID {
		return common.ErrorForbidden
	}

	return repo.Delete(ctx, blog.ID)
}

// TogglePublish flips the published flag of the post identified by id or
// slug. Author only.
func (s *BlogService) TogglePublish(ctx context.Context, key, actorID string) (*models.Blog, error) {
	repo := s.repomanager.Blogs(s.db)

	blog, err := repo.GetByIDOrSlug(ctx, key)
	if err != nil {
		return nil, err
	}
	if blog.AuthorID != actorID {
		return nil, common.ErrorForbidden
	}

	blog.Published = !blog.Published

	return repo.Update(ctx, blog)
}
