package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// LancamentoTipo is the category of an itemized statement entry.
type LancamentoTipo string

const (
	TipoTermo    LancamentoTipo = "termo"    // charges agreed in the lease (aluguel, condomínio, ...)
	TipoRetido   LancamentoTipo = "retido"   // amounts withheld before the transfer
	TipoTaxa     LancamentoTipo = "taxa"     // agency fees
	TipoDesconto LancamentoTipo = "desconto" // discounts
)

// Categories lists the itemized categories in display order.
var Categories = []LancamentoTipo{TipoTermo, TipoRetido, TipoTaxa, TipoDesconto}

// NormalizeTipo maps a raw category string onto a known category.
// The second return value is false for unknown categories.
func NormalizeTipo(raw string) (LancamentoTipo, bool) {
	t := LancamentoTipo(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case TipoTermo, TipoRetido, TipoTaxa, TipoDesconto:
		return t, true
	}
	return t, false
}

// Lancamento is one itemized entry of a statement.
type Lancamento struct {
	Tipo      string `json:"tipo"`
	Descricao string `json:"descricao"`
	Valor     Money  `json:"valor"`
}

// DistribuicaoRepasse is the share of the net transfer owed to one landlord.
// The bank reference is either a PIX key or the classic bank/agency/account set.
type DistribuicaoRepasse struct {
	LocadorID    ID     `json:"locador_id"`
	LocadorNome  string `json:"locador_nome"`
	Porcentagem  Money  `json:"porcentagem"`
	ValorRepasse Money  `json:"valor_repasse"`
	ChavePix     string `json:"chave_pix"`
	Banco        string `json:"banco"`
	Agencia      string `json:"agencia"`
	Conta        string `json:"conta"`
	Titular      string `json:"titular"`
	TipoConta    string `json:"tipo_conta"`
}

// HasPix reports whether the entry is paid through a PIX key.
func (d DistribuicaoRepasse) HasPix() bool {
	return strings.TrimSpace(d.ChavePix) != ""
}

// StatementHeader carries the descriptive fields shared by both statement shapes.
type StatementHeader struct {
	ID             ID     `json:"id"`
	ContratoID     ID     `json:"contrato_id"`
	LocadorNome    string `json:"locador_nome"`
	LocatarioNome  string `json:"locatario_nome"`
	ImovelEndereco string `json:"imovel_endereco"`
	MesReferencia  string `json:"mes_referencia"`
	DataVencimento Date   `json:"data_vencimento"`
	DataPagamento  Date   `json:"data_pagamento"`
	Status         string `json:"status"`
	Observacao     string `json:"observacao"`
	DiasAtraso     int    `json:"dias_atraso"`
	ValorMulta     Money  `json:"valor_multa"`
	ValorJuros     Money  `json:"valor_juros"`
}

// Acrescimo is the late-payment surcharge (multa + juros).
func (h StatementHeader) Acrescimo() Money {
	return h.ValorMulta + h.ValorJuros
}

// HasAcrescimo reports whether a late-days surcharge row should be shown.
func (h StatementHeader) HasAcrescimo() bool {
	return h.DiasAtraso > 0 || h.Acrescimo() != 0
}

// StatementBody is the tagged union of the two statement shapes the backend
// produces. Implementations: ItemizedBody, LegacyBody.
type StatementBody interface {
	statementBody()
}

// ItemizedBody is the current backend shape: itemized entries plus backend
// computed aggregates. Aggregates are pointers because each may be absent.
type ItemizedBody struct {
	Lancamentos  []Lancamento
	ValorBoleto  *Money
	TotalBruto   *Money
	TotalRetido  *Money
	ValorRepasse *Money
	Distribuicao []DistribuicaoRepasse
}

func (ItemizedBody) statementBody() {}

// LegacyBody is the older flat shape: eight base values and ten deductions.
type LegacyBody struct {
	Base      LegacyBase
	Descontos LegacyDescontos
}

func (LegacyBody) statementBody() {}

// LegacyBase holds the base charges of a legacy statement.
type LegacyBase struct {
	ValorAluguel        Money `json:"valor_aluguel"`
	ValorCondominio     Money `json:"valor_condominio"`
	ValorIPTU           Money `json:"valor_iptu"`
	ValorSeguroFianca   Money `json:"valor_seguro_fianca"`
	ValorSeguroIncendio Money `json:"valor_seguro_incendio"`
	ValorTaxaLixo       Money `json:"valor_taxa_lixo"`
	ValorAgua           Money `json:"valor_agua"`
	ValorEnergia        Money `json:"valor_energia"`
}

// LegacyDescontos holds the deductions of a legacy statement.
type LegacyDescontos struct {
	TaxaAdministracao    Money `json:"taxa_administracao"`
	TaxaIntermediacao    Money `json:"taxa_intermediacao"`
	DescontoPontualidade Money `json:"desconto_pontualidade"`
	RetencaoIRRF         Money `json:"retencao_irrf"`
	RetencaoCondominio   Money `json:"retencao_condominio"`
	RetencaoIPTU         Money `json:"retencao_iptu"`
	RetencaoSeguro       Money `json:"retencao_seguro"`
	RetencaoAgua         Money `json:"retencao_agua"`
	RetencaoEnergia      Money `json:"retencao_energia"`
	OutrosDescontos      Money `json:"outros_descontos"`
}

// LegacyField is one labelled flat field of a legacy statement.
type LegacyField struct {
	Label string
	Tipo  LancamentoTipo
	Valor Money
}

// Fields returns the base charges in display order.
func (b LegacyBase) Fields() []LegacyField {
	return []LegacyField{
		{"Aluguel", TipoTermo, b.ValorAluguel},
		{"Condomínio", TipoTermo, b.ValorCondominio},
		{"IPTU", TipoTermo, b.ValorIPTU},
		{"Seguro fiança", TipoTermo, b.ValorSeguroFianca},
		{"Seguro incêndio", TipoTermo, b.ValorSeguroIncendio},
		{"Taxa de lixo", TipoTermo, b.ValorTaxaLixo},
		{"Água", TipoTermo, b.ValorAgua},
		{"Energia", TipoTermo, b.ValorEnergia},
	}
}

// Sum adds every base charge.
func (b LegacyBase) Sum() Money {
	var total Money
	for _, f := range b.Fields() {
		total += f.Valor
	}
	return total
}

// Fields returns the deductions in display order, each tagged with the bucket
// it is shown under.
func (d LegacyDescontos) Fields() []LegacyField {
	return []LegacyField{
		{"Taxa de administração", TipoTaxa, d.TaxaAdministracao},
		{"Taxa de intermediação", TipoTaxa, d.TaxaIntermediacao},
		{"Desconto pontualidade", TipoDesconto, d.DescontoPontualidade},
		{"Retenção IRRF", TipoRetido, d.RetencaoIRRF},
		{"Retenção condomínio", TipoRetido, d.RetencaoCondominio},
		{"Retenção IPTU", TipoRetido, d.RetencaoIPTU},
		{"Retenção seguro", TipoRetido, d.RetencaoSeguro},
		{"Retenção água", TipoRetido, d.RetencaoAgua},
		{"Retenção energia", TipoRetido, d.RetencaoEnergia},
		{"Outros descontos", TipoDesconto, d.OutrosDescontos},
	}
}

// Sum adds every deduction.
func (d LegacyDescontos) Sum() Money {
	var total Money
	for _, f := range d.Fields() {
		total += f.Valor
	}
	return total
}

// Statement is a boleto / prestação de contas as returned by the backend.
type Statement struct {
	StatementHeader
	Body StatementBody
}

// statementWire mirrors every field either shape may carry.
type statementWire struct {
	StatementHeader
	LegacyBase
	LegacyDescontos
	DiasAtraso   Money                 `json:"dias_atraso"`
	Lancamentos  []Lancamento          `json:"lancamentos_detalhados"`
	ValorBoleto  *Money                `json:"valor_boleto"`
	TotalBruto   *Money                `json:"total_bruto"`
	TotalRetido  *Money                `json:"total_retido"`
	ValorRepasse *Money                `json:"valor_repasse"`
	Distribuicao []DistribuicaoRepasse `json:"distribuicao_repasse"`
}

// DecodeStatement decodes a backend statement record and selects its shape:
// a non-empty lancamentos_detalhados array selects ItemizedBody, anything
// else LegacyBody. Only malformed JSON is an error.
func DecodeStatement(data []byte) (Statement, error) {
	var w statementWire
	if err := json.Unmarshal(data, &w); err != nil {
		return Statement{}, fmt.Errorf("decode statement: %w", err)
	}
	return w.statement(), nil
}

// UnmarshalJSON implements json.Unmarshaler so statements nested in other
// payloads (monthly settlements, profile lists) decode the same way.
func (s *Statement) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeStatement(data)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

func (w statementWire) statement() Statement {
	header := w.StatementHeader
	header.DiasAtraso = int(math.Round(float64(w.DiasAtraso)))

	if len(w.Lancamentos) > 0 {
		return Statement{
			StatementHeader: header,
			Body: ItemizedBody{
				Lancamentos:  w.Lancamentos,
				ValorBoleto:  w.ValorBoleto,
				TotalBruto:   w.TotalBruto,
				TotalRetido:  w.TotalRetido,
				ValorRepasse: w.ValorRepasse,
				Distribuicao: w.Distribuicao,
			},
		}
	}
	return Statement{
		StatementHeader: header,
		Body:            LegacyBody{Base: w.LegacyBase, Descontos: w.LegacyDescontos},
	}
}

// MonthlyTotals are the backend-provided aggregates of a monthly settlement.
type MonthlyTotals struct {
	TotalBruto   Money `json:"total_bruto"`
	TotalRetido  Money `json:"total_retido"`
	ValorRepasse Money `json:"valor_repasse"`
}

// MonthlyStatement is the settlement of one client for one month.
type MonthlyStatement struct {
	Cliente     ID             `json:"cliente_id"`
	ClienteNome string         `json:"cliente_nome"`
	Ano         int            `json:"ano"`
	Mes         int            `json:"mes"`
	Boletos     []Statement    `json:"boletos"`
	Totais      *MonthlyTotals `json:"totais"`
}

// Cliente is an entry of the settlement client list.
type Cliente struct {
	ID      ID     `json:"id"`
	Nome    string `json:"nome"`
	CPFCNPJ string `json:"cpf_cnpj"`
	Imoveis int    `json:"quantidade_imoveis"`
}
