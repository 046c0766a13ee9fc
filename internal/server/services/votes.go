package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/linkboard/internal/server/models"
	"github.com/dmitrijs2005/linkboard/internal/server/pubsub"
	"github.com/dmitrijs2005/linkboard/internal/server/repositories/repomanager"
)

// VoteService handles voting on links.
type VoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	publisher   pubsub.Publisher
}

func NewVoteService(db *sql.DB, m repomanager.RepositoryManager, p pubsub.Publisher) *VoteService {
	return &VoteService{
		db:          db,
		repomanager: m,
		publisher:   p,
	}
}

// Vote records userID's vote on linkID and broadcasts it on the NEW_VOTE
// topic. Uniqueness of the (link, user) pair is enforced atomically by the
// repository's conditional insert; a duplicate surfaces as
// common.DuplicateVoteError and a nonexistent link as common.ErrLinkNotFound.
func (s *VoteService) Vote(ctx context.Context, userID, linkID int64) (*models.Vote, error) {
	repo := s.repomanager.Votes(s.db)

	vote, err := repo.Create(ctx, linkID, userID)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, pubsub.TopicNewVote, vote)

	return vote, nil
}

// ListByLink returns the votes cast on linkID.
func (s *VoteService) ListByLink(ctx context.Context, linkID int64) ([]*models.Vote, error) {
	return s.repomanager.Votes(s.db).ListByLink(ctx, linkID)
}
