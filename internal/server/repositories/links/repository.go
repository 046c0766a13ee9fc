package links

import (
	"context"

	"github.com/dmitrijs2005/linkboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, link *models.Link) (*models.Link, error)
	GetByID(ctx context.Context, id int64) (*models.Link, error)
	List(ctx context.Context) ([]*models.Link, error)
	ListByAuthor(ctx context.Context, userID int64) ([]*models.Link, error)
}
