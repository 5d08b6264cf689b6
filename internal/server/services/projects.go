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

// CreateProjectInput carries the caller-supplied fields for a new project.
type CreateProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Features    string `json:"features"`
	GithubURL   string `json:"githubUrl"`
	LiveURL     string `json:"liveUrl"`
}

// UpdateProjectInput carries a partial update; nil fields are left unchanged.
type UpdateProjectInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Features    *string `json:"features"`
	GithubURL   *string `json:"githubUrl"`
	LiveURL     *string `json:"liveUrl"`
}

// ProjectService mirrors BlogService for portfolio projects, plus issuing
// thumbnail upload URLs against object storage.
type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	uploads     *UploadService
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ProjectService {
	return &ProjectService{
		db:          db,
		repomanager: m,
		uploads:     NewUploadService(cfg),
	}
}

// List returns every project, newest first. The project list is fully
// public; there is no draft state.
func (s *ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.repomanager.Projects(s.db).List(ctx)
}

// Get looks a project up by id or slug.
func (s *ProjectService) Get(ctx context.Context, key string) (*models.Project, error) {
	return s.repomanager.Projects(s.db).GetByIDOrSlug(ctx, key)
}

// Create validates the input, derives the slug and inserts the project.
func (s *ProjectService) Create(ctx context.Context, ownerID string, in CreateProjectInput) (*models.Project, error) {

	if in.Title == "" || in.Description == "" {
		return nil, invalid("Title and description are required")
	}
	if len(in.Title) < 3 {
		return nil, invalid("Title must be at least 3 characters long")
	}

	repo := s.repomanager.Projects(s.db)

	slug := slugx.Make(in.Title)
	exists, err := repo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrorAlreadyExists
	}

	project := &models.Project{
		Title:       in.Title,
		Slug:        slug,
		Description: in.Description,
		Features:    in.Features,
		GithubURL:   in.GithubURL,
		LiveURL:     in.LiveURL,
		OwnerID:     ownerID,
	}

	return repo.Create(ctx, project)
}

// Update applies a partial update to the project identified by id or slug.
// Only the owner may update; a title change re-derives the slug.
func (s *ProjectService) Update(ctx context.Context, key, actorID string, in UpdateProjectInput) (*models.Project, error) {
	repo := s.repomanager.Projects(s.db)

	project, err := repo.GetByIDOrSlug(ctx, key)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != actorID {
		return nil, common.ErrorForbidden
	}

	if in.Title != nil && *in.Title != project.Title {
		if len(*in.Title) < 3 {
			return nil, invalid("Title must be at least 3 characters long")
		}
		project.Title = *in.Title
		project.Slug = slugx.Make(*in.Title)
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Features != nil {
		project.Features = *in.Features
	}
	if in.GithubURL != nil {
		project.GithubURL = *in.GithubURL
	}
	if in.LiveURL != nil {
		project.LiveURL = *in.LiveURL
	}

	return repo.Update(ctx, project)
}

// Delete removes the project identified by id or slug. Owner only.
func (s *ProjectService) Delete(ctx context.Context, key, actorID string) error {
	repo := s.repomanager.Projects(s.db)

	project, err := repo.GetByIDOrSlug(ctx, key)
	if err != nil {
		return err
	}
	if project.OwnerID != actorID {
		return common.ErrorForbidden
	}

	return repo.Delete(ctx, project.ID)
}

// ThumbnailUpload is the result of IssueThumbnailUpload: the storage key now
// recorded on the project and a presigned URL the client PUTs the image to.
type ThumbnailUpload struct {
	Key       string `json:"key"`
	UploadURL string `json:"uploadUrl"`
}

// IssueThumbnailUpload generates a fresh storage key for the project's
// thumbnail, presigns a PUT URL for it, and records the key on the project.
// Owner only.
func (s *ProjectService) IssueThumbnailUpload(ctx context.Context, key, actorID string) (*ThumbnailUpload, error) {
	repo := s.repomanager.Projects(s.db)

	project, err := repo.GetByIDOrSlug(ctx, key)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != actorID {
		return nil, common.ErrorForbidden
	}

	storageKey, url, err := s.uploads.PresignThumbnailPut(ctx)
	if err != nil {
		return nil, err
	}

	project.Thumbnail = storageKey
	if _, err := repo.Update(ctx, project); err != nil {
		return nil, err
	}

	return &ThumbnailUpload{Key: storageKey, UploadURL: url}, nil
}
