// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/imobiliaria/portal-locacao/internal/api/response"
	"github.com/imobiliaria/portal-locacao/internal/validation"
)

// ValidateIDMiddleware validates that the {id} URL parameter is present and
// is a positive integer, the identifier format of every backend record.
// Returns 400 Bad Request if the ID is missing or invalid.
//
// Example usage in router:
//
//	r.Route("/prestacoes/{id}", func(r chi.Router) {
//	    r.Use(middleware.ValidateIDMiddleware)
//	    r.Get("/", handler.Statement)
//	})
func ValidateIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if id == "" {
			response.RespondError(w, http.StatusBadRequest, "valid ID is required", "")
			return
		}

		if err := validation.ValidateID(id); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid ID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
