package votes

import (
	"context"

	"github.com/dmitrijs2005/linkboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, linkID, userID int64) (*models.Vote, error)
	ListByLink(ctx context.Context, linkID int64) ([]*models.Vote, error)
}
