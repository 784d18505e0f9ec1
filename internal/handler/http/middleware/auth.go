package middleware

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/collections-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests whose verified token is missing or is not an access token.
// It expects jwtauth.Verifier earlier in the chain.
func AuthRequired() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				if errors.Is(err, jwtauth.ErrExpired) {
					response.HandleError(w, auth.ErrTokenExpired)
					return
				}
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != jwt.TokenTypeAccess {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
