package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/linkboard/internal/dbx"
	"github.com/dmitrijs2005/linkboard/internal/server/repositories/links"
	"github.com/dmitrijs2005/linkboard/internal/server/repositories/users"
	"github.com/dmitrijs2005/linkboard/internal/server/repositories/votes"
)

// RepositoryManager vends repositories bound to a given database handle
// (a *sql.DB or an open transaction) and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Links(db dbx.DBTX) links.Repository
	Votes(db dbx.DBTX) votes.Repository
}
