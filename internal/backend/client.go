// Package backend is the HTTP client for the property-management REST backend.
// The portal owns none of this data; every read and write goes through Client.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/imobiliaria/portal-locacao/internal/api/request"
	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/metrics"
	"github.com/imobiliaria/portal-locacao/internal/model"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

// Client is the set of backend operations the portal consumes.
type Client interface {
	GetStatement(ctx context.Context, id string) (model.Statement, error)
	GetStatementPDF(ctx context.Context, id string) ([]byte, error)
	GetStatementHTML(ctx context.Context, id string) ([]byte, error)

	ListClientes(ctx context.Context) ([]model.Cliente, error)
	GetMonthly(ctx context.Context, cliente string, ano, mes int) (model.MonthlyStatement, error)

	GetEntity(ctx context.Context, kind model.EntityKind, id string) (model.Entity, error)
	ListLocadorImoveis(ctx context.Context, locadorID string) ([]model.Imovel, error)
	ListLocadorContratos(ctx context.Context, locadorID string) ([]model.Contrato, error)
	ListLocadorPrestacoes(ctx context.Context, locadorID string) ([]model.Statement, error)

	PostLancamento(ctx context.Context, req request.LancamentoRequest) error
	PostDesconto(ctx context.Context, req request.DescontoRequest) error
	PutPagamentoDetalhes(ctx context.Context, req request.PagamentoDetalhesRequest) error
}

const (
	// maxErrorBody bounds how much of an error response is kept for logging.
	maxErrorBody     = 512
	// MaxResponseBytes bounds a response body read into memory.
	MaxResponseBytes = 32 << 20
)

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	maxBody    int64
	logger     *zap.Logger
}

// NewHTTPClient creates a backend client.
//
// Parameters:
//   - baseURL: backend root, e.g. http://localhost:8000 (trailing slash is ignored)
//   - token: optional bearer token forwarded on every request
//   - timeout: client-level timeout applied on top of the request context
func NewHTTPClient(baseURL, token string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		maxBody:    MaxResponseBytes,
		logger:     logger.Named("backend"),
	}
}

// GetStatement fetches a prestação de contas and decodes it into its shape.
//
// Endpoint: GET /api/prestacao-contas/{id}
func (c *HTTPClient) GetStatement(ctx context.Context, id string) (model.Statement, error) {
	body, err := c.do(ctx, "statement", http.MethodGet, "/api/prestacao-contas/"+url.PathEscape(id), nil, "application/json")
	if err != nil {
		return model.Statement{}, err
	}
	stmt, err := model.DecodeStatement(body)
	if err != nil {
		return model.Statement{}, fmt.Errorf("%w: %w", apperrors.ErrBackendPayload, err)
	}
	return stmt, nil
}

// GetStatementPDF fetches the server-rendered PDF of a statement.
//
// Endpoint: GET /api/prestacao-contas/{id}/pdf
func (c *HTTPClient) GetStatementPDF(ctx context.Context, id string) ([]byte, error) {
	return c.do(ctx, "statement_pdf", http.MethodGet, "/api/prestacao-contas/"+url.PathEscape(id)+"/pdf", nil, "application/pdf")
}

// GetStatementHTML fetches the server-rendered HTML preview of a statement.
//
// Endpoint: GET /api/prestacao-contas/{id}/pdf?preview=html
func (c *HTTPClient) GetStatementHTML(ctx context.Context, id string) ([]byte, error) {
	return c.do(ctx, "statement_html", http.MethodGet, "/api/prestacao-contas/"+url.PathEscape(id)+"/pdf?preview=html", nil, "text/html")
}

// ListClientes fetches the clients that have monthly settlements.
//
// Endpoint: GET /prestacao-contas/clientes
func (c *HTTPClient) ListClientes(ctx context.Context) ([]model.Cliente, error) {
	var out []model.Cliente
	if err := c.getJSON(ctx, "clientes", "/prestacao-contas/clientes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMonthly fetches the monthly settlement of one client.
//
// Endpoint: GET /prestacao-contas/{cliente}/{ano}/{mes}
func (c *HTTPClient) GetMonthly(ctx context.Context, cliente string, ano, mes int) (model.MonthlyStatement, error) {
	path := fmt.Sprintf("/prestacao-contas/%s/%d/%d", url.PathEscape(cliente), ano, mes)

	var out model.MonthlyStatement
	if err := c.getJSON(ctx, "monthly", path, &out); err != nil {
		return model.MonthlyStatement{}, err
	}
	return out, nil
}

// GetEntity fetches a locador, locatário, imóvel or contrato.
//
// Endpoint: GET /api/{locadores|locatarios|imoveis|contratos}/{id}
func (c *HTTPClient) GetEntity(ctx context.Context, kind model.EntityKind, id string) (model.Entity, error) {
	body, err := c.do(ctx, "entity_"+string(kind), http.MethodGet, "/api/"+kind.Plural()+"/"+url.PathEscape(id), nil, "application/json")
	if err != nil {
		return nil, err
	}
	entity, err := model.DecodeEntity(kind, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrBackendPayload, err)
	}
	return entity, nil
}

// ListLocadorImoveis fetches the properties owned by a landlord.
//
// Endpoint: GET /api/locadores/{id}/imoveis
func (c *HTTPClient) ListLocadorImoveis(ctx context.Context, locadorID string) ([]model.Imovel, error) {
	var out []model.Imovel
	if err := c.getJSON(ctx, "locador_imoveis", "/api/locadores/"+url.PathEscape(locadorID)+"/imoveis", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListLocadorContratos fetches the contracts of a landlord.
//
// Endpoint: GET /api/locadores/{id}/contratos
func (c *HTTPClient) ListLocadorContratos(ctx context.Context, locadorID string) ([]model.Contrato, error) {
	var out []model.Contrato
	if err := c.getJSON(ctx, "locador_contratos", "/api/locadores/"+url.PathEscape(locadorID)+"/contratos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListLocadorPrestacoes fetches the statements of a landlord.
//
// Endpoint: GET /api/locadores/{id}/prestacoes
func (c *HTTPClient) ListLocadorPrestacoes(ctx context.Context, locadorID string) ([]model.Statement, error) {
	var out []model.Statement
	if err := c.getJSON(ctx, "locador_prestacoes", "/api/locadores/"+url.PathEscape(locadorID)+"/prestacoes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostLancamento submits an itemized entry.
//
// Endpoint: POST /prestacao-contas/lancamentos
func (c *HTTPClient) PostLancamento(ctx context.Context, req request.LancamentoRequest) error {
	return c.sendJSON(ctx, "post_lancamento", http.MethodPost, "/prestacao-contas/lancamentos", req)
}

// PostDesconto submits a discount.
//
// Endpoint: POST /prestacao-contas/descontos
func (c *HTTPClient) PostDesconto(ctx context.Context, req request.DescontoRequest) error {
	return c.sendJSON(ctx, "post_desconto", http.MethodPost, "/prestacao-contas/descontos", req)
}

// PutPagamentoDetalhes updates payment details and the observação.
//
// Endpoint: PUT /prestacao-contas/pagamento-detalhes
func (c *HTTPClient) PutPagamentoDetalhes(ctx context.Context, req request.PagamentoDetalhesRequest) error {
	return c.sendJSON(ctx, "put_pagamento_detalhes", http.MethodPut, "/prestacao-contas/pagamento-detalhes", req)
}

func (c *HTTPClient) getJSON(ctx context.Context, op, path string, out any) error {
	body, err := c.do(ctx, op, http.MethodGet, path, nil, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: %w", apperrors.ErrBackendPayload, op, err)
	}
	return nil
}

func (c *HTTPClient) sendJSON(ctx context.Context, op, method, path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", op, err)
	}
	_, err = c.do(ctx, op, method, path, data, "application/json")
	return err
}

// do performs one request and returns the response body of a 2xx answer.
// Transport failures wrap ErrBackendUnavailable, a 404 wraps ErrNotFound and
// any other non-2xx status wraps ErrBackendStatus.
func (c *HTTPClient) do(ctx context.Context, op, method, path string, payload []byte, accept string) ([]byte, error) {
	start := time.Now()
	result := metrics.ResultError
	defer func() {
		metrics.ObserveBackend(op, result, time.Since(start))
	}()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", accept)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("operation", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s: %w", apperrors.ErrBackendUnavailable, op, err)
	}
	defer resp.Body.Close()

	// One byte past the limit tells an oversized body from one that fits.
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s response: %w", apperrors.ErrBackendUnavailable, op, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("backend returned error status",
			zap.String("operation", op),
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(body, maxErrorBody)),
		)
		return nil, fmt.Errorf("%w: %s: HTTP %d", apperrors.ErrBackendStatus, op, resp.StatusCode)
	}
	if int64(len(body)) > c.maxBody {
		c.logger.Warn("backend response too large",
			zap.String("operation", op),
			zap.Int64("limit", c.maxBody),
		)
		return nil, fmt.Errorf("%w: %s response exceeds %d bytes", apperrors.ErrBackendPayload, op, c.maxBody)
	}

	result = metrics.ResultSuccess
	c.logger.Debug("backend request",
		zap.String("operation", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
