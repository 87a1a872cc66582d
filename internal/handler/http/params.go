package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// uuidParam extracts the "id" path parameter and checks it parses as a UUID.
// Malformed ids return notFound so they read the same as absent rows, and the
// text never reaches a uuid-typed column cast.
func uuidParam(r *http.Request, notFound error) (string, error) {
	id := chi.URLParam(r, "id")
	if err := uuid.Validate(id); err != nil {
		return "", notFound
	}
	return id, nil
}
