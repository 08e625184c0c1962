package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/imobiliaria/portal-locacao/internal/api/request"
	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/backend"
	"github.com/imobiliaria/portal-locacao/internal/validation"
)

// FormService validates and forwards the write-side forms to the backend.
// Identical submissions in flight at the same time reach the backend once.
type FormService struct {
	backend backend.Client
	logger  *zap.Logger
	group   singleflight.Group
}

// NewFormService creates a new FormService.
func NewFormService(client backend.Client, logger *zap.Logger) *FormService {
	return &FormService{
		backend: client,
		logger:  logger.Named("forms"),
	}
}

// SubmitLancamento validates and posts an itemized entry.
// Returns a *validation.Error for invalid input.
func (s *FormService) SubmitLancamento(ctx context.Context, req request.LancamentoRequest) error {
	if err := validation.ValidateLancamento(req); err != nil {
		return err
	}
	return s.submit(ctx, "lancamento", req, func(ctx context.Context) error {
		return s.backend.PostLancamento(ctx, req)
	})
}

// SubmitDesconto validates and posts a discount.
func (s *FormService) SubmitDesconto(ctx context.Context, req request.DescontoRequest) error {
	if err := validation.ValidateDesconto(req); err != nil {
		return err
	}
	return s.submit(ctx, "desconto", req, func(ctx context.Context) error {
		return s.backend.PostDesconto(ctx, req)
	})
}

// SubmitPagamentoDetalhes validates and puts payment details / observação.
func (s *FormService) SubmitPagamentoDetalhes(ctx context.Context, req request.PagamentoDetalhesRequest) error {
	if err := validation.ValidatePagamentoDetalhes(req); err != nil {
		return err
	}
	return s.submit(ctx, "pagamento_detalhes", req, func(ctx context.Context) error {
		return s.backend.PutPagamentoDetalhes(ctx, req)
	})
}

// submit collapses concurrent calls with the same form and payload.
func (s *FormService) submit(ctx context.Context, form string, payload any, send func(context.Context) error) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", form, err)
	}
	key := form + ":" + string(body)

	// The shared call outlives any one caller, so it must not inherit the
	// cancellation of whichever request happened to start it.
	ch := s.group.DoChan(key, func() (any, error) {
		return nil, send(context.WithoutCancel(ctx))
	})
	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return ctx.Err()
	}
	err, shared := res.Err, res.Shared
	if shared {
		s.logger.Debug("collapsed duplicate submission", zap.String("form", form))
	}
	if err != nil {
		s.logger.Warn("form submission failed", zap.String("form", form), zap.Error(err))
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %w", apperrors.ErrStatementNotFound, err)
		}
		return fmt.Errorf("%w: %w", apperrors.ErrFailedToSubmit, err)
	}

	s.logger.Info("form submitted", zap.String("form", form))
	return nil
}
