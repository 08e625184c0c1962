package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/imobiliaria/portal-locacao/internal/api/request"
	"github.com/imobiliaria/portal-locacao/internal/api/response"
	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/model"
	"github.com/imobiliaria/portal-locacao/internal/service"
)

// EntityHandler handles entity detail and landlord profile requests.
type EntityHandler struct {
	entityService  *service.EntityService
	profileService *service.ProfileService
}

// NewEntityHandler creates a new EntityHandler.
func NewEntityHandler(entityService *service.EntityService, profileService *service.ProfileService) *EntityHandler {
	return &EntityHandler{
		entityService:  entityService,
		profileService: profileService,
	}
}

// Detail handles GET requests for the detail view of any entity kind.
//
// Endpoint: GET /api/entities/{kind}/{id}?tab=&trail=&mode=
// Response: 200 OK with service.EntityDetail
// Error: 400 Bad Request if the kind, tab or query parameters are invalid
// Error: 404 Not Found if the entity does not exist
func (h *EntityHandler) Detail(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseEntityKind(chi.URLParam(r, "kind"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrUnknownEntityKind.Error(), err.Error())
		return
	}

	q := r.URL.Query()
	params, err := request.ParseEntityQuery(q.Get("tab"), q.Get("trail"), q.Get("mode"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	detail, err := h.entityService.Detail(r.Context(), kind, chi.URLParam(r, "id"), params.Tab, params.Trail)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveEntity.Error())
		return
	}
	if service.ParseCardMode(params.Mode) == service.CardCompact {
		detail.Card = detail.Card.Compact()
	}

	response.RespondJSON(w, http.StatusOK, detail)
}

// Profile handles GET requests for the full landlord profile.
//
// Endpoint: GET /api/locadores/{id}/perfil
// Response: 200 OK with service.LocadorProfile; failed sections carry an error message
// Error: 404 Not Found if the landlord does not exist
func (h *EntityHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.Locador(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveProfile.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, profile)
}
