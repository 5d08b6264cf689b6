package httpapi

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Sadia492/portfolio-server/internal/common"
	"github.com/Sadia492/portfolio-server/internal/dbx"
	"github.com/Sadia492/portfolio-server/internal/logging"
	"github.com/Sadia492/portfolio-server/internal/server/auth"
	"github.com/Sadia492/portfolio-server/internal/server/config"
	"github.com/Sadia492/portfolio-server/internal/server/models"
	blogsrepo "github.com/Sadia492/portfolio-server/internal/server/repositories/blogs"
	projectsrepo "github.com/Sadia492/portfolio-server/internal/server/repositories/projects"
	usersrepo "github.com/Sadia492/portfolio-server/internal/server/repositories/users"
	"github.com/Sadia492/portfolio-server/internal/server/services"
)

// In-memory repositories backing the HTTP tests, so requests exercise the
// full stack from route to service without a database.

type memUsersRepo struct {
	users []*models.User
}

func (m *memUsersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = "u-new"
	}
	m.users = append(m.users, user)
	return user, nil
}

func (m *memUsersRepo) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	created, err := m.Create(ctx, user)
	if err == nil {
		return created, nil
	}
	return m.GetByEmail(ctx, user.Email)
}

func (m *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

type memBlogsRepo struct {
	blogs []*models.Blog
}

func (m *memBlogsRepo) ListPublished(ctx context.Context) ([]*models.Blog, error) {
	var out []*models.Blog
	for _, b := range m.blogs {
		if b.Published {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBlogsRepo) ListAll(ctx context.Context) ([]*models.Blog, error) {
	return m.blogs, nil
}

func (m *memBlogsRepo) GetByIDOrSlug(ctx context.Context, key string) (*models.Blog, error) {
	for _, b := range m.blogs {
		if b.ID == key || b.Slug == key {
			c := *b
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memBlogsRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, b := range m.blogs {
		if b.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *memBlogsRepo) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	if blog.ID == "" {
		blog.ID = "b-new"
	}
	m.blogs = append(m.blogs, blog)
	return blog, nil
}

func (m *memBlogsRepo) Update(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	for i, b := range m.blogs {
		if b.ID == blog.ID {
			m.blogs[i] = blog
			return blog, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memBlogsRepo) Delete(ctx context.Context, id string) error {
	for i, b := range m.blogs {
		if b.ID == id {
			m.blogs = append(m.blogs[:i], m.blogs[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type memProjectsRepo struct {
	projects []*models.Project
}

func (m *memProjectsRepo) List(ctx context.Context) ([]*models.Project, error) {
	return m.projects, nil
}

func (m *memProjectsRepo) GetByIDOrSlug(ctx context.Context, key string) (*models.Project, error) {
	for _, p := range m.projects {
		if p.ID == key || p.Slug == key {
			c := *p
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memProjectsRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, p := range m.projects {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *memProjectsRepo) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	if project.ID == "" {
		project.ID = "p-new"
	}
	m.projects = append(m.projects, project)
	return project, nil
}

func (m *memProjectsRepo) Update(ctx context.Context, project *models.Project) (*models.Project, error) {
	for i, p := range m.projects {
		if p.ID == project.ID {
			m.projects[i] = project
			return project, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memProjectsRepo) Delete(ctx context.Context, id string) error {
	for i, p := range m.projects {
		if p.ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type memRepoManager struct {
	users    *memUsersRepo
	blogs    *memBlogsRepo
	projects *memProjectsRepo
}

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *memRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.users }
func (m *memRepoManager) Blogs(db dbx.DBTX) blogsrepo.Repository       { return m.blogs }
func (m *memRepoManager) Projects(db dbx.DBTX) projectsrepo.Repository { return m.projects }

const (
	testOwnerEmail    = "admin@portfolio.com"
	testOwnerPassword = "admin123"
)

func testServerConfig() *config.Config {
	return &config.Config{
		EndpointAddrHTTP:      ":0",
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
		BcryptCost:            bcrypt.MinCost,
		CORSOrigin:            "http://localhost:3000",
	}
}

// newTestServer builds a Server over in-memory repositories with one seeded
// owner account.
func newTestServer(t *testing.T) (*Server, *memRepoManager) {
	t.Helper()

	hash, err := auth.HashPassword(testOwnerPassword, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	rm := &memRepoManager{
		users: &memUsersRepo{users: []*models.User{{
			ID:           "u-owner",
			Name:         "Portfolio Owner",
			Email:        testOwnerEmail,
			PasswordHash: hash,
			Role:         models.RoleOwner,
		}}},
		blogs:    &memBlogsRepo{},
		projects: &memProjectsRepo{},
	}

	cfg := testServerConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	as := services.NewAuthService(nil, rm, cfg)
	bs := services.NewBlogService(nil, rm, cfg)
	ps := services.NewProjectService(nil, rm, cfg)

	return NewServer(cfg, logger, as, bs, ps), rm
}

// ownerToken mints a token the seeded owner could have obtained via login.
func ownerToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken("u-owner", testOwnerEmail, models.RoleOwner, []byte("k"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return token
}

func roleToken(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := auth.GenerateToken("u-other", "other@portfolio.com", role, []byte("k"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return token
}
