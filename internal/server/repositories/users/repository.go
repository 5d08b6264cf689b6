package users

import (
	"context"

	"github.com/Sadia492/portfolio-server/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// Upsert inserts the user or, when the email is already taken, returns
	// the existing account untouched. Used by the seed tool.
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
