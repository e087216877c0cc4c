package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/forumapi-dev/forumapi/internal/jwt"
	"github.com/forumapi-dev/forumapi/internal/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

const errNoToken = errorString("Missing authentication")

type errorString string

func (e errorString) Error() string { return string(e) }

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt.JwtService
}

func NewAuth(jwtService jwt.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth rejects requests without a valid access token and stores the
// caller's claims in the request context.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				if err == errNoToken {
					utils.WriteFail(w, http.StatusUnauthorized, err.Error())
					return
				}
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractUser reads the bearer token from the Authorization header.
func (a *Auth) extractUser(r *http.Request) (*jwt.Claims, error) {
	tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	tokenString = strings.TrimSpace(tokenString)
	if !found || tokenString == "" {
		return nil, errNoToken
	}

	claims, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &claims, nil
}

// GetUserFromContext retrieves the user from the context
func GetUserFromContext(r *http.Request) *jwt.Claims {
	user, ok := r.Context().Value(UserClaimsKey).(*jwt.Claims)
	if !ok {
		return nil
	}
	return user
}
