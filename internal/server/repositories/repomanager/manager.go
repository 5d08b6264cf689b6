package repomanager

import (
	"context"
	"database/sql"

	"github.com/Sadia492/portfolio-server/internal/dbx"
	"github.com/Sadia492/portfolio-server/internal/server/repositories/blogs"
	"github.com/Sadia492/portfolio-server/internal/server/repositories/projects"
	"github.com/Sadia492/portfolio-server/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a connection or a
// transaction handle, and owns schema migrations.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Blogs(db dbx.DBTX) blogs.Repository
	Projects(db dbx.DBTX) projects.Repository
}
