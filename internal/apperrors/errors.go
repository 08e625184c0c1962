package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrNotFound indicates that the backend has no record for the requested ID.
	ErrNotFound = errors.New("resource not found")

	// ErrStatementNotFound indicates that a prestação de contas with the given ID does not exist.
	ErrStatementNotFound = errors.New("statement not found")

	// ErrEntityNotFound indicates that a locador, locatário, imóvel or contrato does not exist.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrUnknownEntityKind indicates a kind outside the closed set of entity kinds.
	ErrUnknownEntityKind = errors.New("unknown entity kind")
)

// Backend errors represent failures talking to the property-management REST backend.
var (
	// ErrBackendUnavailable indicates a network failure reaching the backend.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrBackendStatus indicates the backend answered with a non-success HTTP status.
	ErrBackendStatus = errors.New("backend returned an error status")

	// ErrBackendPayload indicates the backend answered with a body that could not be decoded.
	ErrBackendPayload = errors.New("backend returned an invalid payload")
)

// Validation errors for request parameters.
var (
	ErrInvalidTab      = errors.New("invalid tab")
	ErrInvalidImage    = errors.New("invalid raster image")
	ErrMissingIdentity = errors.New("missing user identity")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	ErrFailedToRetrieveStatement = errors.New("failed to retrieve statement")
	ErrFailedToRetrieveClients   = errors.New("failed to retrieve clients")
	ErrFailedToRetrieveEntity    = errors.New("failed to retrieve entity")
	ErrFailedToRetrieveProfile   = errors.New("failed to retrieve profile")
	ErrFailedToExport            = errors.New("failed to generate document")
	ErrFailedToSubmit            = errors.New("failed to submit form")
	ErrFailedToStoreRecent       = errors.New("failed to store recent searches")
	ErrFailedToGetVersionInfo    = errors.New("failed to get version information")
)
