package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffloop/hr-portal-go/internal/domain/auth"
	"github.com/staffloop/hr-portal-go/internal/pkg/jwt"
)

// actorFromRequest resolves the authenticated caller from the verified JWT
// on the request. Handlers pass the result down explicitly so services never
// read session state out of the context themselves.
func actorFromRequest(r *http.Request) (auth.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Actor{}, auth.ErrInvalidToken
	}
	return jwt.ActorFromClaims(claims)
}
