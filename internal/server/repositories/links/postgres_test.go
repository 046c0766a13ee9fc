package links

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/linkboard/internal/common"
	"github.com/dmitrijs2005/linkboard/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+links\s*\(url,\s*description,\s*posted_by\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(8), now)
	mock.ExpectQuery(q).
		WithArgs("http://e.com", "d", int64(5)).
		WillReturnRows(rows)

	l := &models.Link{URL: "http://e.com", Description: "d", PostedBy: 5}
	got, err := repo.Create(context.Background(), l)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 8 || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected link: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*url`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList_NewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "url", "description", "posted_by", "created_at"}).
		AddRow(int64(2), "http://b.com", "b", int64(1), now).
		AddRow(int64(1), "http://a.com", "a", int64(1), now.Add(-time.Hour))
	mock.ExpectQuery(`(?s)SELECT\s+id,\s*url,\s*description,\s*posted_by,\s*created_at\s+FROM\s+links\s+ORDER\s+BY\s+created_at\s+DESC`).
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 {
		t.Fatalf("unexpected links: %+v", got)
	}
}

func TestListByAuthor(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "url", "description", "posted_by", "created_at"}).
		AddRow(int64(3), "http://c.com", "c", int64(7), time.Now())
	mock.ExpectQuery(`(?s)SELECT\s+id,\s*url.*WHERE\s+posted_by\s*=\s*\$1`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	got, err := repo.ListByAuthor(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListByAuthor error: %v", err)
	}
	if len(got) != 1 || got[0].PostedBy != 7 {
		t.Fatalf("unexpected links: %+v", got)
	}
}
