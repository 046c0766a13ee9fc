package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/linkboard/internal/common"
	"github.com/dmitrijs2005/linkboard/internal/dbx"
	"github.com/dmitrijs2005/linkboard/internal/server/auth"
	"github.com/dmitrijs2005/linkboard/internal/server/models"
	linksrepo "github.com/dmitrijs2005/linkboard/internal/server/repositories/links"
	usersrepo "github.com/dmitrijs2005/linkboard/internal/server/repositories/users"
	votesrepo "github.com/dmitrijs2005/linkboard/internal/server/repositories/votes"
)

// --- fakes ---

type fakeUsersRepo struct {
	nextID  int64
	byEmail map[string]*models.User

	createErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{nextID: 1, byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrEmailTaken
	}
	u.ID = f.nextID
	f.nextID++
	u.CreatedAt = time.Now()
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakeRepoManager struct {
	u usersrepo.Repository
	l linksrepo.Repository
	v votesrepo.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Links(db dbx.DBTX) linksrepo.Repository      { return m.l }
func (m *fakeRepoManager) Votes(db dbx.DBTX) votesrepo.Repository      { return m.v }

type publishedEvent struct {
	topic   string
	payload any
}

type fakePublisher struct {
	events []publishedEvent
}

func (f *fakePublisher) Publish(ctx context.Context, topic string, payload any) {
	f.events = append(f.events, publishedEvent{topic: topic, payload: payload})
}

func (f *fakePublisher) Subscribe(topic string) (<-chan any, func()) {
	ch := make(chan any)
	close(ch)
	return ch, func() {}
}

func newUserService(t *testing.T, repo usersrepo.Repository) *UserService {
	t.Helper()
	hasher := auth.NewPasswordHasher(4) // min cost keeps tests fast
	issuer := auth.NewTokenIssuer([]byte("k"), time.Hour)
	return NewUserService(nil, &fakeRepoManager{u: repo}, hasher, issuer)
}

// --- tests ---

func TestSignup_StoredPasswordIsHashed(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(t, repo)

	payload, err := s.Signup(context.Background(), "alice@example.com", "plaintext", "Alice")
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	if payload.User.PasswordHash == "plaintext" {
		t.Fatal("stored password must never equal the plaintext")
	}
	if payload.Token == "" {
		t.Fatal("expected a token")
	}
}

func TestSignup_InvalidEmail(t *testing.T) {
	s := newUserService(t, newFakeUsersRepo())

	_, err := s.Signup(context.Background(), "not-an-email", "pw", "X")
	if !errors.Is(err, common.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(t, repo)

	if _, err := s.Signup(context.Background(), "alice@example.com", "pw", "Alice"); err != nil {
		t.Fatalf("first signup error: %v", err)
	}
	_, err := s.Signup(context.Background(), "alice@example.com", "pw2", "Alice2")
	if !errors.Is(err, common.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSignupLogin_RoundTrip(t *testing.T) {
	repo := newFakeUsersRepo()
	hasher := auth.NewPasswordHasher(4)
	issuer := auth.NewTokenIssuer([]byte("k"), time.Hour)
	s := NewUserService(nil, &fakeRepoManager{u: repo}, hasher, issuer)

	signupPayload, err := s.Signup(context.Background(), "alice@example.com", "pw", "Alice")
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}

	loginPayload, err := s.Login(context.Background(), "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if loginPayload.User.ID != signupPayload.User.ID {
		t.Fatalf("login returned user %d, signup created %d", loginPayload.User.ID, signupPayload.User.ID)
	}

	// the login token verifies back to the same identifier
	userID, err := issuer.Verify(loginPayload.Token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if userID != signupPayload.User.ID {
		t.Fatalf("token subject %d, want %d", userID, signupPayload.User.ID)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	s := newUserService(t, newFakeUsersRepo())

	_, err := s.Login(context.Background(), "ghost@example.com", "pw")
	if !errors.Is(err, common.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(t, repo)

	if _, err := s.Signup(context.Background(), "alice@example.com", "right", "Alice"); err != nil {
		t.Fatalf("Signup error: %v", err)
	}

	_, err := s.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, common.ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestLogin_RepoFailureIsInternal(t *testing.T) {
	s := newUserService(t, &erroringUsersRepo{})

	_, err := s.Login(context.Background(), "alice@example.com", "pw")
	if !errors.Is(err, common.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

type erroringUsersRepo struct{}

func (e *erroringUsersRepo) Create(context.Context, *models.User) (*models.User, error) {
	return nil, errors.New("db down")
}
func (e *erroringUsersRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, errors.New("db down")
}
func (e *erroringUsersRepo) GetByID(context.Context, int64) (*models.User, error) {
	return nil, errors.New("db down")
}
