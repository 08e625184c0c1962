package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imobiliaria/portal-locacao/internal/model"
	"github.com/imobiliaria/portal-locacao/internal/service"
	"github.com/imobiliaria/portal-locacao/internal/testutil"
)

func TestBadgeColor(t *testing.T) {
	tests := map[string]string{
		"ativo":        service.ColorGreen,
		"Ativa":        service.ColorGreen,
		"PAGO":         service.ColorGreen,
		"em dia":       service.ColorGreen,
		"pendente":     service.ColorYellow,
		"Em Análise":   service.ColorYellow,
		"a vencer":     service.ColorYellow,
		"vencido":      service.ColorRed,
		"inadimplente": service.ColorRed,
		"atrasado":     service.ColorRed,
		"cancelado":    service.ColorRed,
		"inativo":      service.ColorGray,
		"encerrado":    service.ColorGray,
		"renovação":    service.ColorBlue,
		"":             service.ColorBlue,
	}
	for status, want := range tests {
		assert.Equal(t, want, service.BadgeColor(status), "status %q", status)
	}
}

func TestBuildCard(t *testing.T) {
	t.Run("locador expanded shows every filled row", func(t *testing.T) {
		loc := testutil.NewLocador("1", "FERNANDO DELFINO")
		loc.Contas = []model.ContaBancaria{{Banco: "341"}}

		card := service.BuildCard(loc, service.CardExpanded)
		assert.Equal(t, model.KindLocador, card.Kind)
		assert.Equal(t, "FERNANDO DELFINO", card.Title)
		assert.Equal(t, "Pessoa física", card.Subtitle)
		require.NotNil(t, card.Badge)
		assert.Equal(t, "Ativo", card.Badge.Label)
		assert.Equal(t, service.ColorGreen, card.Badge.Color)
		assert.Len(t, card.Rows, 5)
		assert.Equal(t, 0, card.Hidden)
		assert.Equal(t, "/api/entities/locador/1", card.Link)
	})

	t.Run("missing contact rows are omitted", func(t *testing.T) {
		loc := model.Locador{ID: "2", Nome: "Ana", Email: "ana@example.com"}

		card := service.BuildCard(loc, service.CardExpanded)
		require.Len(t, card.Rows, 1)
		assert.Equal(t, "E-mail", card.Rows[0].Label)
		for _, r := range card.Rows {
			assert.NotEqual(t, "Telefone", r.Label)
		}
		assert.Nil(t, card.Badge)
	})

	t.Run("compact mode keeps the first three rows", func(t *testing.T) {
		card := service.BuildCard(testutil.NewContrato("9", "2024/001"), service.CardCompact)
		assert.Equal(t, "Contrato 2024/001", card.Title)
		require.Len(t, card.Rows, 3)
		assert.Equal(t, "Locatário", card.Rows[0].Label)
		assert.Equal(t, "R$ 2.000,00", card.Rows[1].Value)
		assert.Equal(t, "01/01/2024 a 31/12/2026", card.Rows[2].Value)
		assert.Equal(t, 3, card.Hidden)
	})

	t.Run("compacting an expanded card matches compact mode", func(t *testing.T) {
		c := testutil.NewContrato("9", "2024/001")
		assert.Equal(t, service.BuildCard(c, service.CardCompact), service.BuildCard(c, service.CardExpanded).Compact())
	})

	t.Run("imovel rows format amounts", func(t *testing.T) {
		im := testutil.NewImovel("5", "AP-01", "1")
		im.AreaM2 = 72.5
		im.Quartos = 2

		card := service.BuildCard(im, service.CardExpanded)
		assert.Equal(t, "Centro - São Paulo", card.Subtitle)
		values := map[string]string{}
		for _, r := range card.Rows {
			values[r.Label] = r.Value
		}
		assert.Equal(t, "72,50 m²", values["Área"])
		assert.Equal(t, "2", values["Quartos"])
		_, hasLocador := values["Locador"]
		assert.False(t, hasLocador)
	})

	t.Run("locatario", func(t *testing.T) {
		card := service.BuildCard(model.Locatario{ID: "3", Nome: "João", Status: "inadimplente", Tipo: "comercial"}, service.CardExpanded)
		assert.Equal(t, service.ColorRed, card.Badge.Color)
		require.Len(t, card.Rows, 1)
	})
}

func TestParseCardMode(t *testing.T) {
	assert.Equal(t, service.CardExpanded, service.ParseCardMode("Expanded"))
	assert.Equal(t, service.CardCompact, service.ParseCardMode(""))
	assert.Equal(t, service.CardCompact, service.ParseCardMode("other"))
}
