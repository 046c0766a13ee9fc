// Package services contains the server-side business logic behind the
// GraphQL mutations: account signup/login, link posting, and voting.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/linkboard/internal/common"
	"github.com/dmitrijs2005/linkboard/internal/server/auth"
	"github.com/dmitrijs2005/linkboard/internal/server/models"
	"github.com/dmitrijs2005/linkboard/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// UserService provides authentication-related operations:
// - Signup: create accounts and mint a token
// - Login: verify credentials and mint a token
// - GetByID: resolve a user record for field resolution
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	issuer      *auth.TokenIssuer
}

// NewUserService constructs a UserService. The hasher and issuer carry their
// own configuration (work factor, signing secret, validity).
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.PasswordHasher, issuer *auth.TokenIssuer) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		issuer:      issuer,
	}
}

// Signup registers a new account and returns a token plus the created user.
// The plaintext password is hashed before it reaches the repository; a
// duplicate email surfaces as common.ErrEmailTaken.
func (s *UserService) Signup(ctx context.Context, email, password, name string) (*models.AuthPayload, error) {
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, common.ErrInvalidEmail
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Email: email, Name: name, PasswordHash: hash})
	if err != nil {
		return nil, err
	}

	token, err := s.issuer.Generate(user.ID)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &models.AuthPayload{Token: token, User: user}, nil
}

// Login verifies the credentials and, on success, returns a token plus the
// user. Exactly two caller-visible failures exist: ErrUserNotFound for an
// unknown email and ErrInvalidPassword for a mismatch.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.AuthPayload, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.ErrInternal
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, common.ErrInvalidPassword
	}

	token, err := s.issuer.Generate(user.ID)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &models.AuthPayload{Token: token, User: user}, nil
}

// GetByID returns the user record for id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}
