package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-chi/chi/v5"

	"github.com/imobiliaria/portal-locacao/internal/api/response"
	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/service"
	"github.com/imobiliaria/portal-locacao/internal/validation"
)

// maxUploadBytes bounds a raster upload, multipart overhead included.
const maxUploadBytes = 21 << 20

// StatementHandler handles prestação de contas views and exports.
type StatementHandler struct {
	statementService *service.StatementService
	exportService    *service.ExportService
	clientService    *service.ClientDirectoryService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(
	statementService *service.StatementService,
	exportService *service.ExportService,
	clientService *service.ClientDirectoryService,
) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
		exportService:    exportService,
		clientService:    clientService,
	}
}

// Statement handles GET requests for one reconciled statement.
//
// Endpoint: GET /api/prestacoes/{id}
// Response: 200 OK with service.StatementView
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the backend has no such statement
// Error: 502 Bad Gateway if the backend fails
func (h *StatementHandler) Statement(w http.ResponseWriter, r *http.Request) {
	view, err := h.statementService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveStatement.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, view)
}

// ExportPDF renders the reconciled statement as a PDF download.
//
// Endpoint: GET /api/prestacoes/{id}/export.pdf
func (h *StatementHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	h.respondExport(w, r, h.exportService.StatementPDF)
}

// ExportXLSX renders the reconciled statement as a spreadsheet download.
//
// Endpoint: GET /api/prestacoes/{id}/export.xlsx
func (h *StatementHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.respondExport(w, r, h.exportService.StatementXLSX)
}

// BackendPDF proxies the backend-rendered document. With ?preview=html the
// HTML preview is served inline for opening in a new tab; otherwise the PDF
// is served as an attachment.
//
// Endpoint: GET /api/prestacoes/{id}/pdf[?preview=html]
func (h *StatementHandler) BackendPDF(w http.ResponseWriter, r *http.Request) {
	if strings.EqualFold(r.URL.Query().Get("preview"), "html") {
		h.respondExport(w, r, h.exportService.BackendHTML)
		return
	}
	h.respondExport(w, r, h.exportService.BackendPDF)
}

func (h *StatementHandler) respondExport(w http.ResponseWriter, r *http.Request, export func(ctx context.Context, id string) (service.ExportFile, error)) {
	file, err := export(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToExport.Error())
		return
	}
	response.RespondFile(w, file.ContentType, file.Filename, file.Data)
}

// Raster converts an uploaded page capture (PNG or JPEG) into a paged A4 PDF.
// The image is read from the multipart field "imagem" or, for other content
// types, from the raw request body. ?nome= sets the download name.
//
// Endpoint: POST /api/export/raster
// Response: 200 OK with the PDF as an attachment
// Error: 400 Bad Request if the upload is missing or not an image
func (h *StatementHandler) Raster(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	var data []byte
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, ferr := r.FormFile("imagem")
		if ferr != nil {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidImage.Error(), ferr.Error())
			return
		}
		defer file.Close()
		data, err = io.ReadAll(file)
	} else {
		data, err = io.ReadAll(r.Body)
	}
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidImage.Error(), err.Error())
		return
	}

	file, err := h.exportService.Raster(data, sanitizeFilename(r.URL.Query().Get("nome")))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToExport.Error())
		return
	}
	w.Header().Set("X-Page-Count", strconv.Itoa(file.Pages))
	response.RespondFile(w, file.ContentType, file.Filename, file.Data)
}

// Clientes handles GET requests for the cached settlement client list.
//
// Endpoint: GET /api/prestacao-contas/clientes
// Response: 200 OK with array of model.Cliente
// Error: 502 Bad Gateway if the list was never loaded and the backend fails
func (h *StatementHandler) Clientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.clientService.List(r.Context())
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveClients.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, clientes)
}

// Monthly handles GET requests for the monthly settlement of a client.
//
// Endpoint: GET /api/prestacao-contas/{cliente}/{ano}/{mes}
// Response: 200 OK with service.MonthlyView
// Error: 400 Bad Request if the client ID or period is invalid
// Error: 404 Not Found if the backend has no settlement for the period
func (h *StatementHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	cliente := chi.URLParam(r, "cliente")
	if err := validation.ValidateID(cliente); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid client ID", err.Error())
		return
	}
	ano, mes, err := validation.ValidatePeriod(chi.URLParam(r, "ano"), chi.URLParam(r, "mes"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	view, err := h.statementService.Monthly(r.Context(), cliente, ano, mes)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveStatement.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, view)
}

// sanitizeFilename keeps letters, digits, dash and underscore.
func sanitizeFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
			return r
		}
		return -1
	}, name)
	if len(name) > 64 {
		name = name[:64]
	}
	return name
}
