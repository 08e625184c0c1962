package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/backend"
	"github.com/imobiliaria/portal-locacao/internal/format"
	"github.com/imobiliaria/portal-locacao/internal/model"
	"github.com/imobiliaria/portal-locacao/internal/validation"
)

// maxTrail bounds the breadcrumb trail taken from the query string.
const maxTrail = 10

// Tab is one tab of the entity detail view.
type Tab struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Breadcrumb is one step of the navigation trail.
type Breadcrumb struct {
	Kind  model.EntityKind `json:"kind"`
	ID    string           `json:"id"`
	Label string           `json:"label"`
	Link  string           `json:"link"`
}

// TabContent is what the active tab shows: label/value rows, related cards, or both.
type TabContent struct {
	Rows  []CardRow `json:"rows"`
	Cards []Card    `json:"cards,omitempty"`
	// Erro is set when related data could not be loaded.
	Erro string `json:"erro,omitempty"`
}

// EntityDetail is the detail (modal) view of one entity.
type EntityDetail struct {
	Card        Card         `json:"card"`
	Tabs        []Tab        `json:"tabs"`
	ActiveTab   string       `json:"active_tab"`
	Content     TabContent   `json:"content"`
	Breadcrumbs []Breadcrumb `json:"breadcrumbs"`
}

var entityTabs = map[model.EntityKind][]Tab{
	model.KindLocador: {
		{"dados", "Dados"}, {"contas", "Contas bancárias"}, {"imoveis", "Imóveis"}, {"contratos", "Contratos"},
	},
	model.KindLocatario: {
		{"dados", "Dados"}, {"contato", "Contato"},
	},
	model.KindImovel: {
		{"dados", "Dados"}, {"localizacao", "Localização"},
	},
	model.KindContrato: {
		{"dados", "Dados"}, {"partes", "Partes"}, {"vigencia", "Vigência"},
	},
}

// Tabs returns the tab list of a kind.
func Tabs(kind model.EntityKind) []Tab {
	return entityTabs[kind]
}

// EntityService builds entity detail views.
type EntityService struct {
	backend backend.Client
	logger  *zap.Logger
}

// NewEntityService creates a new EntityService.
func NewEntityService(client backend.Client, logger *zap.Logger) *EntityService {
	return &EntityService{
		backend: client,
		logger:  logger.Named("entities"),
	}
}

// Detail fetches an entity and builds its detail view.
//
// An empty tab selects the first tab of the kind; a tab outside the kind's
// list returns apperrors.ErrInvalidTab. trail is the comma-separated
// navigation path ("locador:12,imovel:5"); malformed steps are skipped and the
// current entity is appended as the last breadcrumb.
func (s *EntityService) Detail(ctx context.Context, kind model.EntityKind, id, tab, trail string) (EntityDetail, error) {
	tabs, ok := entityTabs[kind]
	if !ok {
		return EntityDetail{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownEntityKind, kind)
	}

	active, err := selectTab(tabs, tab)
	if err != nil {
		return EntityDetail{}, err
	}

	entity, err := s.backend.GetEntity(ctx, kind, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return EntityDetail{}, fmt.Errorf("%w: %s %s", apperrors.ErrEntityNotFound, kind, id)
		}
		return EntityDetail{}, err
	}

	card := BuildCard(entity, CardExpanded)
	detail := EntityDetail{
		Card:        card,
		Tabs:        tabs,
		ActiveTab:   active,
		Content:     s.tabContent(ctx, entity, active, card),
		Breadcrumbs: ParseTrail(trail),
	}
	detail.Breadcrumbs = append(detail.Breadcrumbs, Breadcrumb{
		Kind:  kind,
		ID:    entity.EntityID().String(),
		Label: format.OrPlaceholder(entity.DisplayName()),
		Link:  card.Link,
	})
	return detail, nil
}

func selectTab(tabs []Tab, tab string) (string, error) {
	tab = strings.ToLower(strings.TrimSpace(tab))
	if tab == "" {
		return tabs[0].Key, nil
	}
	for _, t := range tabs {
		if t.Key == tab {
			return tab, nil
		}
	}
	return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidTab, tab)
}

// ParseTrail turns "locador:12,imovel:5" into breadcrumbs. Steps with an
// unknown kind or an invalid id are skipped; at most ten steps are kept.
func ParseTrail(trail string) []Breadcrumb {
	crumbs := []Breadcrumb{}
	for _, step := range strings.Split(trail, ",") {
		if len(crumbs) == maxTrail {
			break
		}
		rawKind, id, found := strings.Cut(strings.TrimSpace(step), ":")
		if !found {
			continue
		}
		kind, err := model.ParseEntityKind(rawKind)
		if err != nil {
			continue
		}
		id = strings.TrimSpace(id)
		if validation.ValidateID(id) != nil {
			continue
		}
		crumbs = append(crumbs, Breadcrumb{
			Kind:  kind,
			ID:    id,
			Label: kind.Label() + " " + id,
			Link:  fmt.Sprintf("/api/entities/%s/%s", kind, id),
		})
	}
	return crumbs
}

func (s *EntityService) tabContent(ctx context.Context, entity model.Entity, tab string, card Card) TabContent {
	if tab == "dados" {
		return TabContent{Rows: card.Rows}
	}

	var rows []CardRow
	switch v := entity.(type) {
	case model.Locador:
		switch tab {
		case "contas":
			for i, c := range v.Contas {
				rows = append(rows, CardRow{Label: fmt.Sprintf("Conta %d", i+1), Value: contaLine(model.DistribuicaoRepasse{
					ChavePix: c.ChavePix, Banco: c.Banco, Agencia: c.Agencia, Conta: c.Conta, Titular: c.Titular, TipoConta: c.TipoConta,
				})})
			}
		case "imoveis":
			imoveis, err := s.backend.ListLocadorImoveis(ctx, v.ID.String())
			if err != nil {
				return s.sectionError("imoveis", err)
			}
			cards := make([]Card, 0, len(imoveis))
			for _, im := range imoveis {
				cards = append(cards, BuildCard(im, CardCompact))
			}
			return TabContent{Rows: []CardRow{}, Cards: cards}
		case "contratos":
			contratos, err := s.backend.ListLocadorContratos(ctx, v.ID.String())
			if err != nil {
				return s.sectionError("contratos", err)
			}
			cards := make([]Card, 0, len(contratos))
			for _, c := range contratos {
				cards = append(cards, BuildCard(c, CardCompact))
			}
			return TabContent{Rows: []CardRow{}, Cards: cards}
		}
	case model.Locatario:
		rows = []CardRow{
			{"Telefone", v.Telefone},
			{"E-mail", v.Email},
			{"Endereço", v.Endereco},
		}
	case model.Imovel:
		rows = []CardRow{
			{"Endereço", v.Endereco},
			{"Bairro", v.Bairro},
			{"Cidade", v.Cidade},
		}
	case model.Contrato:
		switch tab {
		case "partes":
			rows = []CardRow{
				{"Locador", v.LocadorNome},
				{"Locatário", v.LocatarioNome},
				{"Imóvel", v.ImovelEndereco},
			}
		case "vigencia":
			rows = []CardRow{
				{"Início", dateOrEmpty(v.DataInicio)},
				{"Fim", dateOrEmpty(v.DataFim)},
				{"Vencimento", diaVencimento(v.DiaVencimento)},
			}
		}
	}

	content := TabContent{Rows: make([]CardRow, 0, len(rows))}
	for _, r := range rows {
		if strings.TrimSpace(r.Value) != "" {
			content.Rows = append(content.Rows, r)
		}
	}
	return content
}

func (s *EntityService) sectionError(section string, err error) TabContent {
	s.logger.Warn("failed to load related records", zap.String("section", section), zap.Error(err))
	return TabContent{Rows: []CardRow{}, Erro: "Não foi possível carregar os dados desta seção."}
}

func dateOrEmpty(d model.Date) string {
	if d.IsZero() {
		return ""
	}
	return format.Date(d.Time)
}
