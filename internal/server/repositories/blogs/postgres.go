package blogs

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

const blogColumns = `id, title, slug, content, excerpt, published, author_id, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPublished(ctx context.Context) ([]*models.Blog, error) {
	query :=
		`SELECT ` + blogColumns + ` FROM blogs
		 WHERE published = TRUE
		 ORDER BY created_at DESC
		 `

	return r.list(ctx, query)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Blog, error) {
	query :=
		`SELECT ` + blogColumns + ` FROM blogs
		 ORDER BY created_at DESC
		 `

	return r.list(ctx, query)
}

func (r *PostgresRepository) GetByIDOrSlug(ctx context.Context, key string) (*models.Blog, error) {
	query :=
		`SELECT ` + blogColumns + ` FROM blogs
		 WHERE id::text = $1 OR slug = $1
		 `

	blog := &models.Blog{}
	err := r.scan(r.db.QueryRowContext(ctx, query, key), blog)
	if err != nil {
		return nil, err
	}

	return blog, nil
}

func (r *PostgresRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM blogs WHERE slug = $1)
		 `

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {

	if blog.ID == "" {
		blog.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO blogs (id, title, slug, content, excerpt, published, author_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		blog.ID, blog.Title, blog.Slug, blog.Content, blog.Excerpt, blog.Published, blog.AuthorID).
		Scan(&blog.CreatedAt, &blog.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return blog, nil
}

func (r *PostgresRepository) Update(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	query :=
		`UPDATE blogs
		 SET title = $2, slug = $3, content = $4, excerpt = $5, published = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		blog.ID, blog.Title, blog.Slug, blog.Content, blog.Excerpt, blog.Published).
		Scan(&blog.CreatedAt, &blog.UpdatedAt)

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

	return blog, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM blogs
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

func (r *PostgresRepository) list(ctx context.Context, query string) ([]*models.Blog, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Blog
	for rows.Next() {
		blog := &models.Blog{}
		if err := rows.Scan(&blog.ID, &blog.Title, &blog.Slug, &blog.Content, &blog.Excerpt,
			&blog.Published, &blog.AuthorID, &blog.CreatedAt, &blog.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) scan(row *sql.Row, blog *models.Blog) error {
	err := row.Scan(&blog.ID, &blog.Title, &blog.Slug, &blog.Content, &blog.Excerpt,
		&blog.Published, &blog.AuthorID, &blog.CreatedAt, &blog.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
