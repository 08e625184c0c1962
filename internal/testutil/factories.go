package testutil

import (
	"encoding/json"
	"testing"

	"github.com/imobiliaria/portal-locacao/internal/model"
)

// StatementBuilder provides a fluent interface for creating backend statement
// records. It builds the backend JSON so the same record can be served by a
// fake backend or decoded directly.
//
// Example usage:
//
//	// Itemized statement with a two-way distribution
//	stmt := testutil.NewItemizedStatement().
//	    WithLancamento("termo", "Aluguel", 2000).
//	    WithDistribuicao("Ana", 1000).
//	    WithDistribuicao("Bruno", 1000).
//	    Build(t)
//
//	// Legacy flat statement
//	stmt := testutil.NewLegacyStatement().WithField("valor_aluguel", 1500).Build(t)
type StatementBuilder struct {
	fields       map[string]any
	lancamentos  []map[string]any
	distribuicao []map[string]any
}

// NewItemizedStatement creates a StatementBuilder for the itemized shape with
// sensible header defaults and no entries.
func NewItemizedStatement() *StatementBuilder {
	return &StatementBuilder{
		fields: map[string]any{
			"id":              1,
			"contrato_id":     10,
			"locador_nome":    "Fernando Delfino",
			"locatario_nome":  "Maria Souza",
			"imovel_endereco": "Rua das Flores, 100",
			"mes_referencia":  "2024-03",
			"data_vencimento": "2024-03-10",
			"status":          "pendente",
		},
		lancamentos: []map[string]any{},
	}
}

// NewLegacyStatement creates a StatementBuilder for the flat legacy shape.
func NewLegacyStatement() *StatementBuilder {
	b := NewItemizedStatement()
	b.lancamentos = nil
	return b
}

// WithID sets the statement ID.
func (b *StatementBuilder) WithID(id int) *StatementBuilder {
	b.fields["id"] = id
	return b
}

// WithField sets any top-level backend field (valor_aluguel, total_retido, ...).
func (b *StatementBuilder) WithField(name string, value any) *StatementBuilder {
	b.fields[name] = value
	return b
}

// WithLancamento appends an itemized entry.
func (b *StatementBuilder) WithLancamento(tipo, descricao string, valor float64) *StatementBuilder {
	b.lancamentos = append(b.lancamentos, map[string]any{
		"tipo": tipo, "descricao": descricao, "valor": valor,
	})
	return b
}

// WithValorRepasse sets the backend declared net transfer.
func (b *StatementBuilder) WithValorRepasse(v float64) *StatementBuilder {
	return b.WithField("valor_repasse", v)
}

// WithDistribuicao appends a distribution entry paid through PIX.
func (b *StatementBuilder) WithDistribuicao(locador string, valor float64) *StatementBuilder {
	b.distribuicao = append(b.distribuicao, map[string]any{
		"locador_id":    len(b.distribuicao) + 1,
		"locador_nome":  locador,
		"porcentagem":   0,
		"valor_repasse": valor,
		"chave_pix":     locador + "@pix",
	})
	return b
}

// JSON returns the backend representation.
func (b *StatementBuilder) JSON(t *testing.T) []byte {
	t.Helper()

	out := make(map[string]any, len(b.fields)+2)
	for k, v := range b.fields {
		out[k] = v
	}
	if b.lancamentos != nil {
		out["lancamentos_detalhados"] = b.lancamentos
	}
	if b.distribuicao != nil {
		out["distribuicao_repasse"] = b.distribuicao
	}

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("Failed to encode statement: %v", err)
	}
	return data
}

// Build decodes the backend representation into a model.Statement.
func (b *StatementBuilder) Build(t *testing.T) model.Statement {
	t.Helper()

	stmt, err := model.DecodeStatement(b.JSON(t))
	if err != nil {
		t.Fatalf("Failed to decode statement: %v", err)
	}
	return stmt
}

// NewLocador returns a landlord with contact data filled in.
func NewLocador(id, nome string) model.Locador {
	return model.Locador{
		ID:         model.ID(id),
		Nome:       nome,
		CPFCNPJ:    "123.456.789-00",
		Telefone:   "(11) 98888-7777",
		Email:      "contato@example.com",
		Endereco:   "Av. Paulista, 1000",
		Status:     "ativo",
		TipoPessoa: "fisica",
	}
}

// NewImovel returns a property owned by locadorID.
func NewImovel(id, codigo, locadorID string) model.Imovel {
	return model.Imovel{
		ID:           model.ID(id),
		Codigo:       codigo,
		Endereco:     "Rua das Flores, " + id,
		Bairro:       "Centro",
		Cidade:       "São Paulo",
		Tipo:         "apartamento",
		Status:       "ativo",
		ValorAluguel: 2000,
		LocadorID:    model.ID(locadorID),
	}
}

// NewContrato returns an active contract.
func NewContrato(id, numero string) model.Contrato {
	return model.Contrato{
		ID:            model.ID(id),
		Numero:        numero,
		Tipo:          "residencial",
		Status:        "ativo",
		LocatarioNome: "Maria Souza",
		LocadorNome:   "Fernando Delfino",
		DataInicio:    model.NewDate(2024, 1, 1),
		DataFim:       model.NewDate(2026, 12, 31),
		ValorAluguel:  2000,
		DiaVencimento: 10,
	}
}
