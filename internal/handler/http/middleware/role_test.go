package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(t *testing.T, ja *jwtauth.JWTAuth) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(ja))
	r.Use(AuthRequired(ja))
	r.Group(func(r chi.Router) {
		r.Use(RequireElevated)
		r.Get("/reports/attendance", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func tokenWithClaims(t *testing.T, ja *jwtauth.JWTAuth, claims map[string]interface{}) string {
	t.Helper()
	_, tokenString, err := ja.Encode(claims)
	require.NoError(t, err)
	return tokenString
}

func TestRequireElevated(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	router := newProtectedRouter(t, ja)

	cases := []struct {
		name       string
		claims     map[string]interface{}
		wantStatus int
	}{
		{"hr passes", map[string]interface{}{"user_id": "u1", "role": "hr", "type": "access"}, http.StatusOK},
		{"admin passes", map[string]interface{}{"user_id": "u1", "role": "admin", "type": "access"}, http.StatusOK},
		{"employee forbidden", map[string]interface{}{"user_id": "u1", "role": "employee", "type": "access"}, http.StatusForbidden},
		{"missing role forbidden", map[string]interface{}{"user_id": "u1", "type": "access"}, http.StatusForbidden},
		{"unknown role forbidden", map[string]interface{}{"user_id": "u1", "role": "superuser", "type": "access"}, http.StatusForbidden},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/reports/attendance", nil)
			req.Header.Set("Authorization", "Bearer "+tokenWithClaims(t, ja, c.claims))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, c.wantStatus, rec.Code)
		})
	}
}

func TestRequireElevated_NoToken(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	router := newProtectedRouter(t, ja)

	req := httptest.NewRequest(http.MethodGet, "/reports/attendance", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsNonAccessToken(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	router := newProtectedRouter(t, ja)

	req := httptest.NewRequest(http.MethodGet, "/reports/attendance", nil)
	req.Header.Set("Authorization", "Bearer "+tokenWithClaims(t, ja, map[string]interface{}{
		"user_id": "u1", "role": "hr", "type": "refresh",
	}))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
