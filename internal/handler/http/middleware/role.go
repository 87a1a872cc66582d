package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffloop/hr-portal-go/internal/domain/user"
	"github.com/staffloop/hr-portal-go/internal/handler/http/response"
)

// RequireElevated allows hr and admin roles through.
func RequireElevated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrElevatedRoleRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrElevatedRoleRequired)
			return
		}

		if !user.Role(roleStr).IsElevated() {
			response.HandleError(w, user.ErrElevatedRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
