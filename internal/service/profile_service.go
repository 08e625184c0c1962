package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/backend"
	"github.com/imobiliaria/portal-locacao/internal/model"
)

// sectionErrorMessage is shown in place of a profile section that failed to load.
const sectionErrorMessage = "Não foi possível carregar esta seção."

// ProfileSection is one list of a landlord profile.
type ProfileSection struct {
	Titulo string `json:"titulo"`
	Cards  []Card `json:"cards"`
	Erro   string `json:"erro,omitempty"`
}

// PrestacaoResumo is a one-line summary of a statement in the profile.
type PrestacaoResumo struct {
	ID           string `json:"id"`
	Referencia   string `json:"referencia"`
	Status       string `json:"status"`
	Cor          string `json:"cor"`
	ValorRepasse Amount `json:"valor_repasse"`
}

// LocadorProfile is the full landlord profile page.
type LocadorProfile struct {
	Locador    Card              `json:"locador"`
	Imoveis    ProfileSection    `json:"imoveis"`
	Contratos  ProfileSection    `json:"contratos"`
	Prestacoes []PrestacaoResumo `json:"prestacoes"`
	// PrestacoesErro is set when the statement list failed to load.
	PrestacoesErro string `json:"prestacoes_erro,omitempty"`
	TotalRepasse   Amount `json:"total_repasse"`
}

// ProfileService builds the landlord profile.
type ProfileService struct {
	backend backend.Client
	logger  *zap.Logger
}

// NewProfileService creates a new ProfileService.
func NewProfileService(client backend.Client, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		backend: client,
		logger:  logger.Named("profile"),
	}
}

// Locador loads the landlord and its imóveis, contratos and prestações
// concurrently. The landlord is required; a failed list degrades to an empty
// section carrying an error message.
func (s *ProfileService) Locador(ctx context.Context, id string) (LocadorProfile, error) {
	var (
		locador    model.Entity
		imoveis    []model.Imovel
		contratos  []model.Contrato
		prestacoes []model.Statement

		imoveisErr, contratosErr, prestacoesErr error
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		e, err := s.backend.GetEntity(gctx, model.KindLocador, id)
		if err != nil {
			return err
		}
		locador = e
		return nil
	})
	g.Go(func() error {
		imoveis, imoveisErr = s.backend.ListLocadorImoveis(gctx, id)
		return nil
	})
	g.Go(func() error {
		contratos, contratosErr = s.backend.ListLocadorContratos(gctx, id)
		return nil
	})
	g.Go(func() error {
		prestacoes, prestacoesErr = s.backend.ListLocadorPrestacoes(gctx, id)
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return LocadorProfile{}, fmt.Errorf("%w: locador %s", apperrors.ErrEntityNotFound, id)
		}
		return LocadorProfile{}, err
	}

	profile := LocadorProfile{
		Locador:    BuildCard(locador, CardExpanded),
		Imoveis:    ProfileSection{Titulo: "Imóveis", Cards: []Card{}},
		Contratos:  ProfileSection{Titulo: "Contratos", Cards: []Card{}},
		Prestacoes: []PrestacaoResumo{},
	}

	if imoveisErr != nil {
		s.logSectionError(id, "imoveis", imoveisErr)
		profile.Imoveis.Erro = sectionErrorMessage
	}
	for _, im := range imoveis {
		profile.Imoveis.Cards = append(profile.Imoveis.Cards, BuildCard(im, CardCompact))
	}

	if contratosErr != nil {
		s.logSectionError(id, "contratos", contratosErr)
		profile.Contratos.Erro = sectionErrorMessage
	}
	for _, c := range contratos {
		profile.Contratos.Cards = append(profile.Contratos.Cards, BuildCard(c, CardCompact))
	}

	if prestacoesErr != nil {
		s.logSectionError(id, "prestacoes", prestacoesErr)
		profile.PrestacoesErro = sectionErrorMessage
	}
	var total float64
	for _, p := range prestacoes {
		view := Reconcile(p)
		total += view.ValorRepasse.Valor
		profile.Prestacoes = append(profile.Prestacoes, PrestacaoResumo{
			ID:           view.ID,
			Referencia:   view.Referencia,
			Status:       view.Status,
			Cor:          BadgeColor(p.Status),
			ValorRepasse: view.ValorRepasse,
		})
	}
	profile.TotalRepasse = derivedAmount(total)

	return profile, nil
}

func (s *ProfileService) logSectionError(id, section string, err error) {
	s.logger.Warn("profile section failed",
		zap.String("locador_id", id),
		zap.String("section", section),
		zap.Error(err),
	)
}
