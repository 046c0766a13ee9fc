// Package auth implements the credential and identity concerns of the server:
// password hashing, JWT issuance/verification, and the HTTP middleware that
// recovers a caller's identity from a bearer token.
package auth

import (
	"strconv"
	"time"

	"github.com/dmitrijs2005/linkboard/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered JWT claims with the user id the token
// was issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// TokenIssuer signs and verifies HS256 JWTs. The signing secret is injected
// at construction and never read from package state.
type TokenIssuer struct {
	secretKey []byte
	validity  time.Duration
}

func NewTokenIssuer(secretKey []byte, validity time.Duration) *TokenIssuer {
	return &TokenIssuer{secretKey: secretKey, validity: validity}
}

// Generate returns a signed token embedding userID as the subject.
func (i *TokenIssuer) Generate(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.validity)),
		},
		UserID: strconv.FormatInt(userID, 10),
	})

	tokenString, err := token.SignedString(i.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify parses and validates tokenString and returns the embedded user id.
// Any parse, signature, or expiry failure yields common.ErrInvalidToken.
func (i *TokenIssuer) Verify(tokenString string) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secretKey, nil
	})
	if err != nil {
		return 0, common.ErrInvalidToken
	}

	if !token.Valid {
		return 0, common.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return 0, common.ErrInvalidToken
	}

	return userID, nil
}
