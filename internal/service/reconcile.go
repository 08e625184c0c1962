package service

import (
	"strconv"
	"strings"

	"github.com/imobiliaria/portal-locacao/internal/format"
	"github.com/imobiliaria/portal-locacao/internal/model"
)

// Shape tells which backend statement shape a view was built from.
type Shape string

const (
	ShapeItemized Shape = "itemized"
	ShapeLegacy   Shape = "legacy"
)

// Amount is a monetary value together with its display string.
type Amount struct {
	Valor     float64 `json:"valor"`
	Formatado string  `json:"formatado"`
}

// newAmount keeps a backend value as sent; only the display string rounds.
func newAmount(v float64) Amount {
	return Amount{Valor: v, Formatado: format.BRL(v)}
}

// derivedAmount is for sums computed here, which are cent-rounded so float
// noise never reaches the client.
func derivedAmount(v float64) Amount {
	return newAmount(round(v))
}

// LineItem is one displayed row of a group.
type LineItem struct {
	Descricao string `json:"descricao"`
	Valor     Amount `json:"valor"`
}

// Grupo is one category bucket of a statement.
type Grupo struct {
	Tipo   model.LancamentoTipo `json:"tipo"`
	Titulo string               `json:"titulo"`
	Itens  []LineItem           `json:"itens"`
}

// Acrescimo is the late-payment row.
type Acrescimo struct {
	DiasAtraso int    `json:"dias_atraso"`
	Descricao  string `json:"descricao"`
	Multa      Amount `json:"multa"`
	Juros      Amount `json:"juros"`
	Total      Amount `json:"total"`
}

// DistribuicaoView is one landlord share of the net transfer.
type DistribuicaoView struct {
	LocadorID   string `json:"locador_id"`
	LocadorNome string `json:"locador_nome"`
	Porcentagem string `json:"porcentagem"`
	Valor       Amount `json:"valor"`
	// Conta is either "PIX: <key>" or the bank/agency/account line.
	Conta string `json:"conta"`
}

// StatementView is the normalized, display-ready form of a statement.
// Both backend shapes produce the same view.
type StatementView struct {
	ID         string `json:"id"`
	ContratoID string `json:"contrato_id,omitempty"`
	Locador    string `json:"locador"`
	Locatario  string `json:"locatario"`
	Imovel     string `json:"imovel"`
	Referencia string `json:"referencia"`
	Vencimento string `json:"vencimento"`
	Pagamento  string `json:"pagamento"`
	Status     string `json:"status"`
	Observacao string `json:"observacao"`

	Shape     Shape      `json:"shape"`
	Grupos    []Grupo    `json:"grupos"`
	Outros    []LineItem `json:"outros,omitempty"`
	Acrescimo *Acrescimo `json:"acrescimo,omitempty"`

	TotalBruto   Amount             `json:"total_bruto"`
	TotalRetido  Amount             `json:"total_retido"`
	ValorRepasse Amount             `json:"valor_repasse"`
	Distribuicao []DistribuicaoView `json:"distribuicao,omitempty"`

	// RepasseDeclarado is the backend valor_repasse when it differs from the
	// distribution sum by at least one cent.
	RepasseDeclarado  *Amount `json:"repasse_declarado,omitempty"`
	RepasseDivergente bool    `json:"repasse_divergente"`

	// Vazio is set when the statement carries no rows and no totals.
	Vazio bool `json:"vazio"`
}

var grupoTitulos = map[model.LancamentoTipo]string{
	model.TipoTermo:    "Valores do termo",
	model.TipoRetido:   "Valores retidos",
	model.TipoTaxa:     "Taxas",
	model.TipoDesconto: "Descontos",
}

// Reconcile turns a backend statement into its display view.
//
// Itemized statements trust the backend aggregates: gross is valor_boleto,
// else total_bruto; withheld is total_retido; net is valor_repasse unless a
// distribution is present, in which case net is the cent-rounded sum of the
// distribution entries. Legacy statements sum the flat fields: gross is the
// sum of the eight base values and net is gross minus the ten deductions.
// Totals are never re-derived from the displayed rows.
func Reconcile(stmt model.Statement) StatementView {
	view := headerView(stmt.StatementHeader)

	grupos := make(map[model.LancamentoTipo][]LineItem, len(model.Categories))

	switch body := stmt.Body.(type) {
	case model.ItemizedBody:
		view.Shape = ShapeItemized
		for _, l := range body.Lancamentos {
			item := LineItem{Descricao: format.OrPlaceholder(l.Descricao), Valor: newAmount(l.Valor.Float())}
			tipo, ok := model.NormalizeTipo(l.Tipo)
			if !ok {
				view.Outros = append(view.Outros, item)
				continue
			}
			grupos[tipo] = append(grupos[tipo], item)
		}

		var bruto float64
		if v, ok := body.ValorBoleto.Value(); ok {
			bruto = v.Float()
		} else if v, ok := body.TotalBruto.Value(); ok {
			bruto = v.Float()
		}
		retido, _ := body.TotalRetido.Value()
		declarado, hasDeclarado := body.ValorRepasse.Value()

		repasse := declarado.Float()
		if len(body.Distribuicao) > 0 {
			var sum float64
			for _, d := range body.Distribuicao {
				sum += d.ValorRepasse.Float()
				view.Distribuicao = append(view.Distribuicao, distribuicaoView(d))
			}
			repasse = round(sum)
			if hasDeclarado && cents(repasse) != cents(declarado.Float()) {
				view.RepasseDivergente = true
				d := newAmount(declarado.Float())
				view.RepasseDeclarado = &d
			}
		}

		view.TotalBruto = newAmount(bruto)
		view.TotalRetido = newAmount(retido.Float())
		view.ValorRepasse = newAmount(repasse)

	case model.LegacyBody:
		view.Shape = ShapeLegacy
		for _, f := range body.Base.Fields() {
			if f.Valor != 0 {
				grupos[f.Tipo] = append(grupos[f.Tipo], LineItem{Descricao: f.Label, Valor: newAmount(f.Valor.Float())})
			}
		}
		for _, f := range body.Descontos.Fields() {
			if f.Valor != 0 {
				grupos[f.Tipo] = append(grupos[f.Tipo], LineItem{Descricao: f.Label, Valor: newAmount(f.Valor.Float())})
			}
		}

		bruto := body.Base.Sum().Float()
		retido := body.Descontos.Sum().Float()
		view.TotalBruto = derivedAmount(bruto)
		view.TotalRetido = derivedAmount(retido)
		view.ValorRepasse = derivedAmount(bruto - retido)

	default:
		// A zero Statement has no body; it renders as empty.
		view.Shape = ShapeLegacy
		view.TotalBruto = newAmount(0)
		view.TotalRetido = newAmount(0)
		view.ValorRepasse = newAmount(0)
	}

	view.Grupos = make([]Grupo, 0, len(model.Categories))
	rows := len(view.Outros)
	for _, tipo := range model.Categories {
		itens := grupos[tipo]
		if itens == nil {
			itens = []LineItem{}
		}
		rows += len(itens)
		view.Grupos = append(view.Grupos, Grupo{Tipo: tipo, Titulo: grupoTitulos[tipo], Itens: itens})
	}

	if stmt.HasAcrescimo() {
		view.Acrescimo = &Acrescimo{
			DiasAtraso: stmt.DiasAtraso,
			Descricao:  acrescimoDescricao(stmt.DiasAtraso),
			Multa:      newAmount(stmt.ValorMulta.Float()),
			Juros:      newAmount(stmt.ValorJuros.Float()),
			Total:      derivedAmount(stmt.Acrescimo().Float()),
		}
	}

	view.Vazio = rows == 0 && view.Acrescimo == nil &&
		view.TotalBruto.Valor == 0 && view.TotalRetido.Valor == 0 && view.ValorRepasse.Valor == 0
	return view
}

func headerView(h model.StatementHeader) StatementView {
	return StatementView{
		ID:         h.ID.String(),
		ContratoID: h.ContratoID.String(),
		Locador:    format.OrPlaceholder(h.LocadorNome),
		Locatario:  format.OrPlaceholder(h.LocatarioNome),
		Imovel:     format.OrPlaceholder(h.ImovelEndereco),
		Referencia: format.Reference(h.MesReferencia),
		Vencimento: format.Date(h.DataVencimento.Time),
		Pagamento:  format.Date(h.DataPagamento.Time),
		Status:     format.OrPlaceholder(h.Status),
		Observacao: strings.TrimSpace(h.Observacao),
	}
}

func distribuicaoView(d model.DistribuicaoRepasse) DistribuicaoView {
	return DistribuicaoView{
		LocadorID:   d.LocadorID.String(),
		LocadorNome: format.OrPlaceholder(d.LocadorNome),
		Porcentagem: format.Percent(d.Porcentagem.Float()),
		Valor:       newAmount(d.ValorRepasse.Float()),
		Conta:       contaLine(d),
	}
}

func contaLine(d model.DistribuicaoRepasse) string {
	if d.HasPix() {
		return "PIX: " + strings.TrimSpace(d.ChavePix)
	}
	var parts []string
	if d.Banco != "" {
		parts = append(parts, "Banco "+d.Banco)
	}
	if d.Agencia != "" {
		parts = append(parts, "Ag. "+d.Agencia)
	}
	if d.Conta != "" {
		conta := "Conta " + d.Conta
		if d.TipoConta != "" {
			conta += " (" + d.TipoConta + ")"
		}
		parts = append(parts, conta)
	}
	if d.Titular != "" {
		parts = append(parts, d.Titular)
	}
	if len(parts) == 0 {
		return format.NotInformed
	}
	return strings.Join(parts, " · ")
}

func acrescimoDescricao(dias int) string {
	switch {
	case dias == 1:
		return "Acréscimo por 1 dia de atraso"
	case dias > 1:
		return "Acréscimo por " + strconv.Itoa(dias) + " dias de atraso"
	}
	return "Acréscimos"
}
