package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/imobiliaria/portal-locacao/internal/api/request"
	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/model"
	"github.com/imobiliaria/portal-locacao/internal/render"
	"github.com/imobiliaria/portal-locacao/internal/service"
	"github.com/imobiliaria/portal-locacao/internal/validation"
)

const htmlContentType = "text/html; charset=utf-8"

// PageHandler serves the server-rendered portal pages. Failures render the
// error page with a message in place of the content.
type PageHandler struct {
	renderer         *render.Renderer
	statementService *service.StatementService
	entityService    *service.EntityService
	profileService   *service.ProfileService
	searchService    *service.SearchService
	logger           *zap.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(
	renderer *render.Renderer,
	statementService *service.StatementService,
	entityService *service.EntityService,
	profileService *service.ProfileService,
	searchService *service.SearchService,
	logger *zap.Logger,
) *PageHandler {
	return &PageHandler{
		renderer:         renderer,
		statementService: statementService,
		entityService:    entityService,
		profileService:   profileService,
		searchService:    searchService,
		logger:           logger.Named("pages"),
	}
}

// Statement renders GET /prestacoes/{id}.
func (h *PageHandler) Statement(w http.ResponseWriter, r *http.Request) {
	view, err := h.statementService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, render.PageStatement, view)
}

// Monthly renders GET /prestacao-contas/{cliente}/{ano}/{mes}.
func (h *PageHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	cliente := chi.URLParam(r, "cliente")
	if err := validation.ValidateID(cliente); err != nil {
		h.renderError(w, r, err)
		return
	}
	ano, mes, err := validation.ValidatePeriod(chi.URLParam(r, "ano"), chi.URLParam(r, "mes"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	view, err := h.statementService.Monthly(r.Context(), cliente, ano, mes)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, render.PageMonthly, view)
}

// Profile renders GET /locadores/{id}/perfil.
func (h *PageHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.Locador(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, render.PageProfile, profile)
}

// Entity renders GET /entidades/{kind}/{id}.
func (h *PageHandler) Entity(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseEntityKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.renderError(w, r, apperrors.ErrUnknownEntityKind)
		return
	}
	q := r.URL.Query()
	params, err := request.ParseEntityQuery(q.Get("tab"), q.Get("trail"), q.Get("mode"))
	if err != nil {
		h.render(w, r, http.StatusBadRequest, render.PageError, pageError(err, http.StatusBadRequest))
		return
	}

	detail, err := h.entityService.Detail(r.Context(), kind, chi.URLParam(r, "id"), params.Tab, params.Trail)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if service.ParseCardMode(params.Mode) == service.CardCompact {
		detail.Card = detail.Card.Compact()
	}
	h.render(w, r, http.StatusOK, render.PageEntity, detail)
}

// Search renders GET /busca?q=. An empty query renders the bare form.
func (h *PageHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.searchService.Search(r.Context(), identityKey(r), r.URL.Query().Get("q"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, render.PageSearch, result)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(status)
	if err := h.renderer.Render(w, page, data); err != nil {
		h.logger.Error("failed to render page",
			zap.String("page", page),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
}

func (h *PageHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, _ := statusFor(err, "")
	data := pageError(err, status)
	if status >= http.StatusInternalServerError {
		h.logger.Error("page failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	h.render(w, r, status, render.PageError, data)
}

// pageError picks the Portuguese message shown for err.
func pageError(err error, status int) render.ErrorData {
	var verr *validation.Error
	switch {
	case errors.Is(err, apperrors.ErrStatementNotFound):
		return render.ErrorData{Titulo: "Prestação de contas não encontrada", Mensagem: "Verifique o número informado e tente novamente."}
	case errors.Is(err, apperrors.ErrEntityNotFound), errors.Is(err, apperrors.ErrNotFound):
		return render.ErrorData{Titulo: "Registro não encontrado", Mensagem: "O registro solicitado não existe ou foi removido."}
	case errors.As(err, &verr), status == http.StatusBadRequest:
		return render.ErrorData{Titulo: "Endereço inválido", Mensagem: "Os parâmetros informados não são válidos."}
	case status == http.StatusBadGateway:
		return render.ErrorData{Titulo: "Serviço indisponível", Mensagem: "Não foi possível carregar os dados. Tente novamente em instantes."}
	}
	return render.ErrorData{Titulo: "Erro inesperado", Mensagem: "Ocorreu um erro ao montar a página."}
}
