package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/imobiliaria/portal-locacao/internal/api/request"
)

func strPtr(s string) *string { return &s }

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var vErr *Error
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected *validation.Error, got %T (%v)", err, err)
	}
	return vErr.Fields
}

func TestValidateID(t *testing.T) {
	for _, id := range []string{"1", "42", " 7 "} {
		if err := ValidateID(id); err != nil {
			t.Errorf("Expected %q to be valid, got %v", id, err)
		}
	}
	for _, id := range []string{"", "0", "-3", "abc", "1.5"} {
		if err := ValidateID(id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Expected ErrInvalidID for %q, got %v", id, err)
		}
	}
}

func TestValidatePeriod(t *testing.T) {
	t.Run("valid period", func(t *testing.T) {
		y, m, err := ValidatePeriod("2024", "03")
		if err != nil || y != 2024 || m != 3 {
			t.Errorf("Expected 2024/3, got %d/%d (%v)", y, m, err)
		}
	})

	t.Run("invalid month", func(t *testing.T) {
		if _, _, err := ValidatePeriod("2024", "13"); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("Expected ErrInvalidPeriod, got %v", err)
		}
	})

	t.Run("invalid year", func(t *testing.T) {
		if _, _, err := ValidatePeriod("24", "1"); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("Expected ErrInvalidPeriod, got %v", err)
		}
	})
}

func TestValidateLancamento(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		err := ValidateLancamento(request.LancamentoRequest{
			PrestacaoID: "10", Tipo: "Retido", Descricao: "IRRF", Valor: -50,
		})
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		err := ValidateLancamento(request.LancamentoRequest{PrestacaoID: "x", Tipo: "bonus"})
		fields := fieldsOf(t, err)
		for _, f := range []string{"prestacao_id", "tipo", "descricao", "valor"} {
			if _, ok := fields[f]; !ok {
				t.Errorf("Expected error for field %s, got %v", f, fields)
			}
		}
	})

	t.Run("description too long", func(t *testing.T) {
		err := ValidateLancamento(request.LancamentoRequest{
			PrestacaoID: "1", Tipo: "termo", Descricao: strings.Repeat("a", 201), Valor: 1,
		})
		if _, ok := fieldsOf(t, err)["descricao"]; !ok {
			t.Error("Expected descricao error")
		}
	})
}

func TestValidateDesconto(t *testing.T) {
	if err := ValidateDesconto(request.DescontoRequest{PrestacaoID: "3", Descricao: "Pontualidade", Valor: 25}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	fields := fieldsOf(t, ValidateDesconto(request.DescontoRequest{PrestacaoID: "3", Descricao: "x", Valor: -1}))
	if _, ok := fields["valor"]; !ok {
		t.Errorf("Expected valor error, got %v", fields)
	}
}

func TestValidatePagamentoDetalhes(t *testing.T) {
	t.Run("observacao only", func(t *testing.T) {
		err := ValidatePagamentoDetalhes(request.PagamentoDetalhesRequest{
			PrestacaoID: "5", Observacao: strPtr("Pago em duas parcelas"),
		})
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		fields := fieldsOf(t, ValidatePagamentoDetalhes(request.PagamentoDetalhesRequest{PrestacaoID: "5"}))
		if _, ok := fields["body"]; !ok {
			t.Errorf("Expected body error, got %v", fields)
		}
	})

	t.Run("bad date and method", func(t *testing.T) {
		fields := fieldsOf(t, ValidatePagamentoDetalhes(request.PagamentoDetalhesRequest{
			PrestacaoID:    "5",
			DataPagamento:  strPtr("10/03/2024"),
			FormaPagamento: strPtr("bitcoin"),
		}))
		if len(fields) != 2 {
			t.Errorf("Expected 2 field errors, got %v", fields)
		}
	})
}

func TestErrorMessageIsSorted(t *testing.T) {
	err := &Error{Fields: map[string]string{"b": "second", "a": "first"}}
	if got := err.Error(); got != "a: first; b: second" {
		t.Errorf("Unexpected message %q", got)
	}
}
