package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/imobiliaria/portal-locacao/internal/api/response"
	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/auth"
	"github.com/imobiliaria/portal-locacao/internal/validation"
)

// maxJSONBody bounds form request bodies.
const maxJSONBody = 1 << 20

// parseJSON decodes the request body into T. Unknown fields are rejected.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("decode request body: %w", err)
	}
	return v, nil
}

// errorStatuses maps sentinel errors to HTTP statuses, first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{apperrors.ErrStatementNotFound, http.StatusNotFound},
	{apperrors.ErrEntityNotFound, http.StatusNotFound},
	{apperrors.ErrNotFound, http.StatusNotFound},
	{apperrors.ErrUnknownEntityKind, http.StatusBadRequest},
	{apperrors.ErrInvalidTab, http.StatusBadRequest},
	{apperrors.ErrInvalidImage, http.StatusBadRequest},
	{apperrors.ErrMissingIdentity, http.StatusBadRequest},
	{validation.ErrInvalidID, http.StatusBadRequest},
	{validation.ErrInvalidPeriod, http.StatusBadRequest},
	{apperrors.ErrBackendUnavailable, http.StatusBadGateway},
	{apperrors.ErrBackendStatus, http.StatusBadGateway},
	{apperrors.ErrBackendPayload, http.StatusBadGateway},
}

// statusFor returns the HTTP status and the client-facing message for err.
// Unmatched errors are 500 with the fallback message.
func statusFor(err error, fallback string) (int, string) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return http.StatusBadRequest, "validation failed"
	}
	for _, m := range errorStatuses {
		if errors.Is(err, m.err) {
			if m.status == http.StatusBadGateway {
				return m.status, fallback
			}
			return m.status, m.err.Error()
		}
	}
	return http.StatusInternalServerError, fallback
}

// respondServiceError writes err as a JSON error response.
// Validation errors carry their field map as details.
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	status, message := statusFor(err, fallback)
	var verr *validation.Error
	if errors.As(err, &verr) {
		response.RespondError(w, status, message, verr.Fields)
		return
	}
	response.RespondError(w, status, message, err.Error())
}

// identityKey returns the storage key of the caller, or "" when the request
// went through no identity middleware.
func identityKey(r *http.Request) string {
	id, _ := auth.IdentityFromContext(r.Context())
	return id.Key()
}
