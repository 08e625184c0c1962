package handlers

import (
	"net/http"

	"github.com/imobiliaria/portal-locacao/internal/api/response"
	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/service"
)

// SearchHandler handles entity search and the caller's recent searches.
type SearchHandler struct {
	searchService *service.SearchService
	recentService *service.RecentSearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService *service.SearchService, recentService *service.RecentSearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		recentService: recentService,
	}
}

// RecentResponse lists the caller's recent queries, newest first.
type RecentResponse struct {
	Recentes []string `json:"recentes"`
}

// Search handles immediate searches.
//
// Endpoint: GET /api/search?q=
// Response: 200 OK with service.SearchResult (unevaluated for queries under 2 characters)
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.searchService.Search(r.Context(), identityKey(r), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, err, "failed to search")
		return
	}
	response.RespondJSON(w, http.StatusOK, result)
}

// Live handles search-as-you-type requests. Each caller's queries are
// debounced; a request superseded by a newer one from the same caller
// answers 204 No Content.
//
// Endpoint: GET /api/search/live?q=
// Response: 200 OK with service.SearchResult, or 204 No Content when superseded
func (h *SearchHandler) Live(w http.ResponseWriter, r *http.Request) {
	key := identityKey(r)
	result, ok, err := h.searchService.Live(r.Context(), key, key, r.URL.Query().Get("q"))
	if err != nil {
		if r.Context().Err() != nil {
			// Client went away while waiting.
			w.WriteHeader(http.StatusNoContent)
			return
		}
		respondServiceError(w, err, "failed to search")
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	response.RespondJSON(w, http.StatusOK, result)
}

// Recent handles GET requests for the caller's recent searches.
//
// Endpoint: GET /api/search/recent
// Response: 200 OK with RecentResponse
// Error: 400 Bad Request if the request carries no identity
func (h *SearchHandler) Recent(w http.ResponseWriter, r *http.Request) {
	recentes, err := h.recentService.List(r.Context(), identityKey(r))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToStoreRecent.Error())
		return
	}
	if recentes == nil {
		recentes = []string{}
	}
	response.RespondJSON(w, http.StatusOK, RecentResponse{Recentes: recentes})
}

// ClearRecent handles DELETE requests clearing the caller's recent searches.
//
// Endpoint: DELETE /api/search/recent
// Response: 204 No Content
func (h *SearchHandler) ClearRecent(w http.ResponseWriter, r *http.Request) {
	if err := h.recentService.Clear(r.Context(), identityKey(r)); err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToStoreRecent.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
