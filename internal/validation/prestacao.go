package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/imobiliaria/portal-locacao/internal/api/request"
	"github.com/imobiliaria/portal-locacao/internal/model"
)

const (
	maxDescricao  = 200
	maxObservacao = 1000
)

// ValidFormaPagamento contains the accepted payment methods.
var ValidFormaPagamento = map[string]bool{
	"pix": true, "boleto": true, "transferencia": true, "dinheiro": true, "cheque": true,
}

// ValidateLancamento validates an itemized entry submission.
//
// Required fields:
//   - prestacao_id: positive integer
//   - tipo: one of termo, retido, taxa, desconto
//   - descricao: non-empty, at most 200 characters
//   - valor: non-zero; the sign is kept as submitted
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateLancamento(req request.LancamentoRequest) error {
	errors := make(map[string]string)

	if err := ValidateID(req.PrestacaoID); err != nil {
		errors["prestacao_id"] = "prestacao_id must be a positive integer"
	}

	if strings.TrimSpace(req.Tipo) == "" {
		errors["tipo"] = "tipo is required"
	} else if _, ok := model.NormalizeTipo(req.Tipo); !ok {
		errors["tipo"] = fmt.Sprintf("invalid tipo: %s", req.Tipo)
	}

	validateDescricao(errors, req.Descricao)

	if req.Valor == 0 || math.IsNaN(req.Valor) || math.IsInf(req.Valor, 0) {
		errors["valor"] = "valor must be a non-zero amount"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateDesconto validates a discount submission. Discounts are positive
// amounts; the backend applies the sign.
func ValidateDesconto(req request.DescontoRequest) error {
	errors := make(map[string]string)

	if err := ValidateID(req.PrestacaoID); err != nil {
		errors["prestacao_id"] = "prestacao_id must be a positive integer"
	}

	validateDescricao(errors, req.Descricao)

	if req.Valor <= 0 || math.IsInf(req.Valor, 0) {
		errors["valor"] = "valor must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidatePagamentoDetalhes validates a payment details update. At least one of
// data_pagamento, forma_pagamento or observacao must be present.
func ValidatePagamentoDetalhes(req request.PagamentoDetalhesRequest) error {
	errors := make(map[string]string)

	if err := ValidateID(req.PrestacaoID); err != nil {
		errors["prestacao_id"] = "prestacao_id must be a positive integer"
	}

	if req.DataPagamento == nil && req.FormaPagamento == nil && req.Observacao == nil {
		errors["body"] = "at least one field must be provided"
	}

	if req.DataPagamento != nil {
		if _, err := ParseTime(*req.DataPagamento); err != nil {
			errors["data_pagamento"] = "data_pagamento must be YYYY-MM-DD"
		}
	}

	if req.FormaPagamento != nil && !ValidFormaPagamento[strings.ToLower(strings.TrimSpace(*req.FormaPagamento))] {
		errors["forma_pagamento"] = fmt.Sprintf("invalid forma_pagamento: %s", *req.FormaPagamento)
	}

	if req.Observacao != nil && len([]rune(*req.Observacao)) > maxObservacao {
		errors["observacao"] = fmt.Sprintf("observacao must be at most %d characters", maxObservacao)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateDescricao(errors map[string]string, descricao string) {
	switch d := strings.TrimSpace(descricao); {
	case d == "":
		errors["descricao"] = "descricao is required"
	case len([]rune(d)) > maxDescricao:
		errors["descricao"] = fmt.Sprintf("descricao must be at most %d characters", maxDescricao)
	}
}
