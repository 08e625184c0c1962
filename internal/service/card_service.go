package service

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/imobiliaria/portal-locacao/internal/format"
	"github.com/imobiliaria/portal-locacao/internal/model"
	"github.com/imobiliaria/portal-locacao/internal/search"
)

// CardMode selects how many rows a card shows.
type CardMode string

const (
	CardCompact  CardMode = "compact"
	CardExpanded CardMode = "expanded"
)

// compactRows is how many rows a compact card keeps.
const compactRows = 3

// Badge colors.
const (
	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorRed    = "red"
	ColorGray   = "gray"
	ColorBlue   = "blue"
)

// ParseCardMode returns CardExpanded for "expanded" and CardCompact otherwise.
func ParseCardMode(s string) CardMode {
	if strings.EqualFold(strings.TrimSpace(s), string(CardExpanded)) {
		return CardExpanded
	}
	return CardCompact
}

// CardRow is one label/value line of a card.
type CardRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Badge is the colored status marker of a card.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Card is the display model shared by every entity kind.
type Card struct {
	Kind     model.EntityKind `json:"kind"`
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle,omitempty"`
	Badge    *Badge           `json:"badge,omitempty"`
	Rows     []CardRow        `json:"rows"`
	// Hidden counts rows dropped by compact mode.
	Hidden int    `json:"hidden"`
	Link   string `json:"link"`
}

var statusColors = map[string]string{
	"ativo":        ColorGreen,
	"ativa":        ColorGreen,
	"pago":         ColorGreen,
	"paga":         ColorGreen,
	"em dia":       ColorGreen,
	"pendente":     ColorYellow,
	"em analise":   ColorYellow,
	"a vencer":     ColorYellow,
	"vencido":      ColorRed,
	"vencida":      ColorRed,
	"inadimplente": ColorRed,
	"atrasado":     ColorRed,
	"atrasada":     ColorRed,
	"cancelado":    ColorRed,
	"cancelada":    ColorRed,
	"inativo":      ColorGray,
	"inativa":      ColorGray,
	"encerrado":    ColorGray,
	"encerrada":    ColorGray,
}

// BadgeColor maps a status string to its badge color. Unknown statuses are blue.
func BadgeColor(status string) string {
	if c, ok := statusColors[search.Normalize(status)]; ok {
		return c
	}
	return ColorBlue
}

func newBadge(status string) *Badge {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil
	}
	r, size := utf8.DecodeRuneInString(status)
	label := string(unicode.ToUpper(r)) + status[size:]
	return &Badge{Label: label, Color: BadgeColor(status)}
}

// BuildCard renders an entity as a card. Rows without a value are omitted.
func BuildCard(e model.Entity, mode CardMode) Card {
	var card Card
	var rows []CardRow

	switch v := e.(type) {
	case model.Locador:
		card = Card{Title: format.OrPlaceholder(v.Nome), Subtitle: tipoPessoa(v.TipoPessoa), Badge: newBadge(v.Status)}
		rows = []CardRow{
			{"CPF/CNPJ", v.CPFCNPJ},
			{"Telefone", v.Telefone},
			{"E-mail", v.Email},
			{"Endereço", v.Endereco},
			{"Contas bancárias", countLabel(len(v.Contas), "conta", "contas")},
		}
	case model.Locatario:
		card = Card{Title: format.OrPlaceholder(v.Nome), Subtitle: v.Profissao, Badge: newBadge(v.Status)}
		rows = []CardRow{
			{"CPF/CNPJ", v.CPFCNPJ},
			{"Telefone", v.Telefone},
			{"E-mail", v.Email},
			{"Endereço", v.Endereco},
			{"Tipo", v.Tipo},
		}
	case model.Imovel:
		card = Card{Title: format.OrPlaceholder(v.DisplayName()), Subtitle: joinNonEmpty(" - ", v.Bairro, v.Cidade), Badge: newBadge(v.Status)}
		rows = []CardRow{
			{"Aluguel", moneyOrEmpty(v.ValorAluguel)},
			{"Tipo", v.Tipo},
			{"Área", areaLabel(v.AreaM2)},
			{"Quartos", intOrEmpty(v.Quartos)},
			{"Locador", v.LocadorNome},
		}
	case model.Contrato:
		card = Card{Title: v.DisplayName(), Subtitle: v.ImovelEndereco, Badge: newBadge(v.Status)}
		rows = []CardRow{
			{"Locatário", v.LocatarioNome},
			{"Aluguel", moneyOrEmpty(v.ValorAluguel)},
			{"Vigência", vigencia(v.DataInicio, v.DataFim)},
			{"Vencimento", diaVencimento(v.DiaVencimento)},
			{"Locador", v.LocadorNome},
			{"Tipo", v.Tipo},
		}
	default:
		return Card{Title: format.NoData, Rows: []CardRow{}}
	}

	card.Kind = e.Kind()
	card.ID = e.EntityID().String()
	card.Link = fmt.Sprintf("/api/entities/%s/%s", e.Kind(), e.EntityID())

	card.Rows = make([]CardRow, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r.Value) != "" {
			card.Rows = append(card.Rows, r)
		}
	}
	if mode != CardExpanded {
		return card.Compact()
	}
	return card
}

// Compact returns the card trimmed to its compact layout.
func (c Card) Compact() Card {
	if len(c.Rows) > compactRows {
		c.Hidden += len(c.Rows) - compactRows
		c.Rows = c.Rows[:compactRows:compactRows]
	}
	return c
}

func tipoPessoa(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "fisica", "física", "pf":
		return "Pessoa física"
	case "juridica", "jurídica", "pj":
		return "Pessoa jurídica"
	}
	return t
}

func countLabel(n int, singular, plural string) string {
	switch {
	case n == 1:
		return "1 " + singular
	case n > 1:
		return strconv.Itoa(n) + " " + plural
	}
	return ""
}

func moneyOrEmpty(m model.Money) string {
	if m == 0 {
		return ""
	}
	return format.BRL(m.Float())
}

func areaLabel(m model.Money) string {
	if m <= 0 {
		return ""
	}
	return format.Decimal(m.Float()) + " m²"
}

func intOrEmpty(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func vigencia(inicio, fim model.Date) string {
	switch {
	case inicio.IsZero() && fim.IsZero():
		return ""
	case fim.IsZero():
		return "desde " + format.Date(inicio.Time)
	case inicio.IsZero():
		return "até " + format.Date(fim.Time)
	}
	return format.Date(inicio.Time) + " a " + format.Date(fim.Time)
}

func diaVencimento(dia int) string {
	if dia < 1 || dia > 31 {
		return ""
	}
	return "Dia " + strconv.Itoa(dia)
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
