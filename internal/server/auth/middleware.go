package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/linkboard/internal/common"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// ContextWithUserID stores the caller's user id in ctx.
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext recovers the caller's user id placed by Middleware.
// ok is false for anonymous requests.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// Middleware returns an HTTP middleware that verifies a bearer token found in
// the Authorization header and stows the subject's user id in the request
// context. Requests without the header pass through anonymously; resolvers
// decide whether anonymity is acceptable. A present but unverifiable token is
// rejected outright.
func Middleware(verifier *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get(common.AuthorizationHeaderName)
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, `{"error": "invalid authorization header"}`, http.StatusUnauthorized)
				return
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			userID, err := verifier.Verify(tokenString)
			if err != nil {
				http.Error(w, `{"error": "unauthorized"}`, http.StatusUnauthorized)
				return
			}

			ctx := ContextWithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
