package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

type authKey struct{}

// HashPassword returns a bcrypt hash suitable for BasicAuth. The minimum cost
// keeps per-request checks cheap.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
}

// BasicAuth records in the request context whether the request carried the
// configured Basic credentials. It never rejects a request itself; handlers
// read the verdict with IsAuthorized.
func BasicAuth(username string, passwordHash []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorized := false
			if user, pass, ok := r.BasicAuth(); ok {
				userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
				passOK := bcrypt.CompareHashAndPassword(passwordHash, []byte(pass)) == nil
				authorized = userOK && passOK
			}

			ctx := context.WithValue(r.Context(), authKey{}, authorized)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsAuthorized reports the verdict stored by BasicAuth.
func IsAuthorized(ctx context.Context) bool {
	ok, _ := ctx.Value(authKey{}).(bool)
	return ok
}
