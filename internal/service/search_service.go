package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/imobiliaria/portal-locacao/internal/directory"
	"github.com/imobiliaria/portal-locacao/internal/metrics"
	"github.com/imobiliaria/portal-locacao/internal/model"
	"github.com/imobiliaria/portal-locacao/internal/search"
)

// maxSuggestions bounds the "você quis dizer" list.
const maxSuggestions = 3

// SearchGroup is the result list of one collection.
type SearchGroup struct {
	Kind  model.EntityKind `json:"kind"`
	Label string           `json:"label"`
	Cards []Card           `json:"cards"`
}

// SearchResult is the answer to one query.
type SearchResult struct {
	Query string `json:"query"`
	// Evaluated is false when the query was too short to run.
	Evaluated bool          `json:"evaluated"`
	Total     int           `json:"total"`
	Groups    []SearchGroup `json:"groups"`
	Sugestoes []string      `json:"sugestoes,omitempty"`
	Recentes  []string      `json:"recentes,omitempty"`
}

// SearchService runs entity searches over the directory.
type SearchService struct {
	dir       *directory.Directory
	recent    *RecentSearchService
	debouncer *search.Debouncer
	logger    *zap.Logger
}

// NewSearchService creates a new SearchService. recent may be nil to disable
// recent-search tracking.
func NewSearchService(dir *directory.Directory, recent *RecentSearchService, debouncer *search.Debouncer, logger *zap.Logger) *SearchService {
	return &SearchService{
		dir:       dir,
		recent:    recent,
		debouncer: debouncer,
		logger:    logger.Named("search"),
	}
}

// Search matches query against every collection. Queries shorter than two
// characters return an empty, unevaluated result. An evaluated query returns
// one group per collection, each in directory order; no ranking is applied.
func (s *SearchService) Search(ctx context.Context, user, query string) (SearchResult, error) {
	query = strings.TrimSpace(query)
	result := SearchResult{Query: query, Groups: []SearchGroup{}}

	if !search.Valid(query) {
		return result, nil
	}
	result.Evaluated = true

	normalized := search.Normalize(query)
	for _, kind := range model.EntityKinds {
		cards := []Card{}
		for _, e := range s.dir.Collection(kind) {
			if search.MatchNormalized(e.SearchFields(), normalized) {
				cards = append(cards, BuildCard(e, CardCompact))
			}
		}
		result.Total += len(cards)
		result.Groups = append(result.Groups, SearchGroup{Kind: kind, Label: groupLabel(kind), Cards: cards})
	}

	if result.Total == 0 {
		metrics.IncSearch("miss")
		result.Sugestoes = search.Suggest(s.dir.Names(), query, maxSuggestions)
		return result, nil
	}
	metrics.IncSearch("hit")

	if s.recent != nil && user != "" {
		recentes, err := s.recent.Record(ctx, user, query)
		if err != nil {
			// Recent searches are a convenience; the result still goes out.
			s.logger.Warn("failed to record recent search", zap.String("user", user), zap.Error(err))
		} else {
			result.Recentes = recentes
		}
	}
	return result, nil
}

// Live is Search behind the per-session debouncer. It returns ok=false when a
// newer query from the same session superseded this one.
func (s *SearchService) Live(ctx context.Context, session, user, query string) (SearchResult, bool, error) {
	if s.debouncer != nil {
		latest, err := s.debouncer.Wait(ctx, session)
		if err != nil {
			return SearchResult{}, false, err
		}
		if !latest {
			metrics.IncSearchSuperseded()
			return SearchResult{}, false, nil
		}
	}
	result, err := s.Search(ctx, user, query)
	return result, err == nil, err
}

func groupLabel(kind model.EntityKind) string {
	switch kind {
	case model.KindLocador:
		return "Locadores"
	case model.KindLocatario:
		return "Locatários"
	case model.KindImovel:
		return "Imóveis"
	case model.KindContrato:
		return "Contratos"
	}
	return string(kind)
}
