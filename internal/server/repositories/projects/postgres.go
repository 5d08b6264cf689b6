package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Sadia492/portfolio-server/internal/common"
	"github.com/Sadia492/portfolio-server/internal/dbx"
	"github.com/Sadia492/portfolio-server/internal/server/models"
)

const uniqueViolation = "23505"

const projectColumns = `id, title, slug, description, features, thumbnail, github_url, live_url, owner_id, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Project, error) {
	query :=
		`SELECT ` + projectColumns + ` FROM projects
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Project
	for rows.Next() {
		p := &models.Project{}
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.Features, &p.Thumbnail,
			&p.GithubURL, &p.LiveURL, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByIDOrSlug(ctx context.Context, key string) (*models.Project, error) {
	query :=
		`SELECT ` + projectColumns + ` FROM projects
		 WHERE id::text = $1 OR slug = $1
		 `

	p := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, key).
		Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.Features, &p.Thumbnail,
			&p.GithubURL, &p.LiveURL, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM projects WHERE slug = $1)
		 `

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {

	if project.ID == "" {
		project.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO projects (id, title, slug, description, features, thumbnail, github_url, live_url, owner_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		project.ID, project.Title, project.Slug, project.Description, project.Features,
		project.Thumbnail, project.GithubURL, project.LiveURL, project.OwnerID).
		Scan(&project.CreatedAt, &project.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return project, nil
}

func (r *PostgresRepository) Update(ctx context.Context, project *models.Project) (*models.Project, error) {
	query :=
		`UPDATE projects
		 SET title = $2, slug = $3, description = $4, features = $5, thumbnail = $6,
		     github_url = $7, live_url = $8, updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		project.ID, project.Title, project.Slug, project.Description, project.Features,
		project.Thumbnail, project.GithubURL, project.LiveURL).
		Scan(&project.CreatedAt, &project.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return project, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM projects
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
