package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/linkboard/internal/server/models"
	"github.com/dmitrijs2005/linkboard/internal/server/pubsub"
	"github.com/dmitrijs2005/linkboard/internal/server/repositories/repomanager"
)

// LinkService handles link posting and feed reads.
type LinkService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	publisher   pubsub.Publisher
}

func NewLinkService(db *sql.DB, m repomanager.RepositoryManager, p pubsub.Publisher) *LinkService {
	return &LinkService{
		db:          db,
		repomanager: m,
		publisher:   p,
	}
}

// Post creates a link owned by userID and broadcasts it on the NEW_LINK
// topic. The publish is best-effort; a created link is returned even if no
// subscriber sees the event.
func (s *LinkService) Post(ctx context.Context, userID int64, url, description string) (*models.Link, error) {
	repo := s.repomanager.Links(s.db)

	link, err := repo.Create(ctx, &models.Link{URL: url, Description: description, PostedBy: userID})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, pubsub.TopicNewLink, link)

	return link, nil
}

// Feed returns all links, newest first.
func (s *LinkService) Feed(ctx context.Context) ([]*models.Link, error) {
	return s.repomanager.Links(s.db).List(ctx)
}

// GetByID returns a single link.
func (s *LinkService) GetByID(ctx context.Context, id int64) (*models.Link, error) {
	return s.repomanager.Links(s.db).GetByID(ctx, id)
}

// ListByAuthor returns the links posted by userID, newest first.
func (s *LinkService) ListByAuthor(ctx context.Context, userID int64) ([]*models.Link, error) {
	return s.repomanager.Links(s.db).ListByAuthor(ctx, userID)
}
