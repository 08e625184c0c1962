package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/backend"
	"github.com/imobiliaria/portal-locacao/internal/format"
	"github.com/imobiliaria/portal-locacao/internal/metrics"
	"github.com/imobiliaria/portal-locacao/internal/model"
)

// StatementService handles prestação de contas operations.
type StatementService struct {
	backend backend.Client
	logger  *zap.Logger
}

// NewStatementService creates a new StatementService.
func NewStatementService(client backend.Client, logger *zap.Logger) *StatementService {
	return &StatementService{
		backend: client,
		logger:  logger.Named("statements"),
	}
}

// MonthlyView is the reconciled monthly settlement of one client.
type MonthlyView struct {
	ClienteID   string          `json:"cliente_id"`
	ClienteNome string          `json:"cliente_nome"`
	Ano         int             `json:"ano"`
	Mes         int             `json:"mes"`
	Periodo     string          `json:"periodo"`
	Boletos     []StatementView `json:"boletos"`

	TotalBruto   Amount `json:"total_bruto"`
	TotalRetido  Amount `json:"total_retido"`
	ValorRepasse Amount `json:"valor_repasse"`
	// TotaisBackend is true when the totals came from the backend rather
	// than from summing the boletos.
	TotaisBackend bool `json:"totais_backend"`
}

// Get fetches and reconciles one statement.
// Returns apperrors.ErrStatementNotFound when the backend has no such record.
func (s *StatementService) Get(ctx context.Context, id string) (StatementView, error) {
	stmt, err := s.backend.GetStatement(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return StatementView{}, fmt.Errorf("%w: %s", apperrors.ErrStatementNotFound, id)
		}
		return StatementView{}, err
	}
	return s.reconcile(stmt), nil
}

// Monthly fetches the settlement of a client for one month and reconciles
// every boleto. Totals are the backend totais when present, otherwise the
// sums of the reconciled boleto totals.
func (s *StatementService) Monthly(ctx context.Context, cliente string, ano, mes int) (MonthlyView, error) {
	monthly, err := s.backend.GetMonthly(ctx, cliente, ano, mes)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return MonthlyView{}, fmt.Errorf("%w: %s %d/%d", apperrors.ErrStatementNotFound, cliente, mes, ano)
		}
		return MonthlyView{}, err
	}

	view := MonthlyView{
		ClienteID:   monthly.Cliente.String(),
		ClienteNome: format.OrPlaceholder(monthly.ClienteNome),
		Ano:         ano,
		Mes:         mes,
		Periodo:     format.MonthYear(ano, mes),
		Boletos:     make([]StatementView, 0, len(monthly.Boletos)),
	}
	if view.ClienteID == "" {
		view.ClienteID = cliente
	}

	var bruto, retido, repasse float64
	for _, b := range monthly.Boletos {
		bv := s.reconcile(b)
		bruto += bv.TotalBruto.Valor
		retido += bv.TotalRetido.Valor
		repasse += bv.ValorRepasse.Valor
		view.Boletos = append(view.Boletos, bv)
	}

	if monthly.Totais != nil {
		view.TotaisBackend = true
		view.TotalBruto = newAmount(monthly.Totais.TotalBruto.Float())
		view.TotalRetido = newAmount(monthly.Totais.TotalRetido.Float())
		view.ValorRepasse = newAmount(monthly.Totais.ValorRepasse.Float())
		return view, nil
	}
	view.TotalBruto = derivedAmount(bruto)
	view.TotalRetido = derivedAmount(retido)
	view.ValorRepasse = derivedAmount(repasse)

	return view, nil
}

// Raw fetches the statement without reconciling it. Used by exporters that
// need the backend record.
func (s *StatementService) Raw(ctx context.Context, id string) (model.Statement, error) {
	stmt, err := s.backend.GetStatement(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return model.Statement{}, fmt.Errorf("%w: %s", apperrors.ErrStatementNotFound, id)
	}
	return stmt, err
}

func (s *StatementService) reconcile(stmt model.Statement) StatementView {
	view := Reconcile(stmt)
	if view.RepasseDivergente {
		metrics.IncRepasseMismatch()
		s.logger.Warn("distribution sum differs from declared valor_repasse",
			zap.String("statement_id", view.ID),
			zap.Float64("distribution_sum", view.ValorRepasse.Valor),
			zap.Float64("declared", view.RepasseDeclarado.Valor),
		)
	}
	return view
}
