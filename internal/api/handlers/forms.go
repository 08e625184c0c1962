package handlers

import (
	"net/http"

	"github.com/imobiliaria/portal-locacao/internal/api/request"
	"github.com/imobiliaria/portal-locacao/internal/api/response"
	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/service"
)

// FormHandler handles the write-side forms of a prestação de contas.
// It parses request bodies and delegates validation and submission to the
// formService.
type FormHandler struct {
	formService *service.FormService
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(formService *service.FormService) *FormHandler {
	return &FormHandler{
		formService: formService,
	}
}

// SubmitResponse acknowledges a successful form submission.
type SubmitResponse struct {
	Message string `json:"message"`
}

// CreateLancamento handles POST requests adding an itemized entry.
//
// Endpoint: POST /api/prestacao-contas/lancamentos
// Request Body: LancamentoRequest (prestacao_id, tipo, descricao, valor)
// Response: 201 Created with SubmitResponse
// Error: 400 Bad Request if the body is invalid or validation fails
// Error: 404 Not Found if the prestação de contas does not exist
// Error: 502 Bad Gateway if the backend fails
func (h *FormHandler) CreateLancamento(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.LancamentoRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.formService.SubmitLancamento(r.Context(), req); err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToSubmit.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, SubmitResponse{Message: "Lançamento registrado."})
}

// CreateDesconto handles POST requests registering a discount.
//
// Endpoint: POST /api/prestacao-contas/descontos
// Request Body: DescontoRequest (prestacao_id, descricao, valor)
// Response: 201 Created with SubmitResponse
func (h *FormHandler) CreateDesconto(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.DescontoRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.formService.SubmitDesconto(r.Context(), req); err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToSubmit.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, SubmitResponse{Message: "Desconto registrado."})
}

// UpdatePagamentoDetalhes handles PUT requests updating the payment details
// and observação of a prestação de contas.
//
// Endpoint: PUT /api/prestacao-contas/pagamento-detalhes
// Request Body: PagamentoDetalhesRequest (prestacao_id and any of data_pagamento, forma_pagamento, observacao)
// Response: 200 OK with SubmitResponse
func (h *FormHandler) UpdatePagamentoDetalhes(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.PagamentoDetalhesRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.formService.SubmitPagamentoDetalhes(r.Context(), req); err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToSubmit.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, SubmitResponse{Message: "Detalhes do pagamento atualizados."})
}
