package votes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/linkboard/internal/common"
	"github.com/dmitrijs2005/linkboard/internal/dbx"
	"github.com/dmitrijs2005/linkboard/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a vote for the (link, user) pair. The conditional insert is
// a single statement, so the at-most-one-vote invariant holds even under
// concurrent requests: the loser of a race sees no returned row.
// A duplicate yields common.DuplicateVoteError; a nonexistent link yields
// common.ErrLinkNotFound.
func (r *PostgresRepository) Create(ctx context.Context, linkID, userID int64) (*models.Vote, error) {

	query :=
		`INSERT INTO votes (link_id, user_id)
         VALUES ($1, $2)
		 ON CONFLICT (link_id, user_id) DO NOTHING
		 RETURNING id
		 `

	vote := &models.Vote{LinkID: linkID, UserID: userID}
	err := r.db.QueryRowContext(ctx, query, linkID, userID).Scan(&vote.ID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &common.DuplicateVoteError{LinkID: linkID}
		}
		if dbx.IsForeignKeyViolation(err) {
			return nil, common.ErrLinkNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return vote, nil
}

func (r *PostgresRepository) ListByLink(ctx context.Context, linkID int64) ([]*models.Vote, error) {
	query :=
		`SELECT id, link_id, user_id FROM votes
		 WHERE link_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, linkID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Vote
	for rows.Next() {
		vote := &models.Vote{}
		if err := rows.Scan(&vote.ID, &vote.LinkID, &vote.UserID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
