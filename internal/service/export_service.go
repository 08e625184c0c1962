package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/backend"
	"github.com/imobiliaria/portal-locacao/internal/export"
	"github.com/imobiliaria/portal-locacao/internal/format"
	"github.com/imobiliaria/portal-locacao/internal/metrics"
)

// Content types of exported files.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// maxRasterBytes bounds an uploaded capture.
const maxRasterBytes = 20 << 20

// ExportFile is a generated or proxied document ready to be served.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
	// Pages is only set for rasterized exports.
	Pages int
}

// ExportService produces statement documents: native PDF/XLSX from the
// reconciled view, proxied backend renderings, and rasterized captures.
type ExportService struct {
	statements *StatementService
	backend    backend.Client
	logger     *zap.Logger
}

// NewExportService creates a new ExportService.
func NewExportService(statements *StatementService, client backend.Client, logger *zap.Logger) *ExportService {
	return &ExportService{
		statements: statements,
		backend:    client,
		logger:     logger.Named("export"),
	}
}

// StatementPDF renders the reconciled statement as a PDF.
func (s *ExportService) StatementPDF(ctx context.Context, id string) (ExportFile, error) {
	return s.native(ctx, id, "pdf", ContentTypePDF, export.StatementPDF)
}

// StatementXLSX renders the reconciled statement as a workbook.
func (s *ExportService) StatementXLSX(ctx context.Context, id string) (ExportFile, error) {
	return s.native(ctx, id, "xlsx", ContentTypeXLSX, export.StatementXLSX)
}

func (s *ExportService) native(ctx context.Context, id, kind, contentType string, render func(export.Document) ([]byte, error)) (ExportFile, error) {
	start := time.Now()

	view, err := s.statements.Get(ctx, id)
	if err != nil {
		metrics.ObserveExport(kind, metrics.ResultError, time.Since(start))
		return ExportFile{}, err
	}

	data, err := render(StatementDocument(view))
	if err != nil {
		metrics.ObserveExport(kind, metrics.ResultError, time.Since(start))
		s.logger.Error("failed to render statement", zap.String("statement_id", id), zap.String("format", kind), zap.Error(err))
		return ExportFile{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToExport, err)
	}

	metrics.ObserveExport(kind, metrics.ResultSuccess, time.Since(start))
	return ExportFile{
		Filename:    statementFilename(id, kind),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// BackendPDF proxies the backend-rendered PDF of a statement.
//
// Endpoint: GET /api/prestacao-contas/{id}/pdf
func (s *ExportService) BackendPDF(ctx context.Context, id string) (ExportFile, error) {
	start := time.Now()
	data, err := s.backend.GetStatementPDF(ctx, id)
	if err != nil {
		metrics.ObserveExport("backend_pdf", metrics.ResultError, time.Since(start))
		return ExportFile{}, s.backendError(id, err)
	}
	metrics.ObserveExport("backend_pdf", metrics.ResultSuccess, time.Since(start))
	return ExportFile{Filename: statementFilename(id, "pdf"), ContentType: ContentTypePDF, Data: data}, nil
}

// BackendHTML proxies the backend HTML preview of a statement.
//
// Endpoint: GET /api/prestacao-contas/{id}/pdf?preview=html
func (s *ExportService) BackendHTML(ctx context.Context, id string) (ExportFile, error) {
	start := time.Now()
	data, err := s.backend.GetStatementHTML(ctx, id)
	if err != nil {
		metrics.ObserveExport("backend_html", metrics.ResultError, time.Since(start))
		return ExportFile{}, s.backendError(id, err)
	}
	metrics.ObserveExport("backend_html", metrics.ResultSuccess, time.Since(start))
	return ExportFile{ContentType: ContentTypeHTML, Data: data}, nil
}

func (s *ExportService) backendError(id string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: %s", apperrors.ErrStatementNotFound, id)
	}
	s.logger.Warn("backend export failed", zap.String("statement_id", id), zap.Error(err))
	return fmt.Errorf("%w: %w", apperrors.ErrFailedToExport, err)
}

// Raster paginates a captured page image into an A4 PDF.
// name is used to build the download filename; it may be empty.
func (s *ExportService) Raster(data []byte, name string) (ExportFile, error) {
	start := time.Now()
	if len(data) == 0 || len(data) > maxRasterBytes {
		metrics.ObserveExport("raster", metrics.ResultError, time.Since(start))
		return ExportFile{}, fmt.Errorf("%w: size %d bytes", apperrors.ErrInvalidImage, len(data))
	}

	out, pages, err := export.RasterToPDF(data)
	if err != nil {
		metrics.ObserveExport("raster", metrics.ResultError, time.Since(start))
		return ExportFile{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidImage, err)
	}
	metrics.ObserveExport("raster", metrics.ResultSuccess, time.Since(start))

	if name == "" {
		name = "documento"
	}
	return ExportFile{
		Filename:    name + ".pdf",
		ContentType: ContentTypePDF,
		Data:        out,
		Pages:       pages,
	}, nil
}

func statementFilename(id, ext string) string {
	return "prestacao-contas-" + id + "." + ext
}

// StatementDocument maps a reconciled statement onto the exported document
// layout: header fields, the four category groups, the late-payment row and
// the trusted totals.
func StatementDocument(view StatementView) export.Document {
	doc := export.Document{
		Titulo: "Prestação de contas - " + view.Referencia,
		Header: []export.Field{
			{Label: "Locador", Value: view.Locador},
			{Label: "Locatário", Value: view.Locatario},
			{Label: "Imóvel", Value: view.Imovel},
			{Label: "Vencimento", Value: view.Vencimento},
			{Label: "Pagamento", Value: view.Pagamento},
			{Label: "Status", Value: view.Status},
		},
	}

	for _, g := range view.Grupos {
		doc.Sections = append(doc.Sections, export.Section{
			Titulo: g.Titulo,
			Lines:  exportLines(g.Itens),
			Vazio:  format.NoData,
		})
	}
	if len(view.Outros) > 0 {
		doc.Sections = append(doc.Sections, export.Section{Titulo: "Outros", Lines: exportLines(view.Outros)})
	}
	if len(view.Distribuicao) > 0 {
		lines := make([]export.Line, 0, len(view.Distribuicao))
		for _, d := range view.Distribuicao {
			lines = append(lines, export.Line{
				Descricao: d.LocadorNome + " (" + d.Porcentagem + ") - " + d.Conta,
				Valor:     d.Valor.Valor,
				Formatado: d.Valor.Formatado,
			})
		}
		doc.Sections = append(doc.Sections, export.Section{Titulo: "Distribuição do repasse", Lines: lines})
	}

	if view.Acrescimo != nil {
		doc.Totais = append(doc.Totais, exportLine(view.Acrescimo.Descricao, view.Acrescimo.Total))
	}
	doc.Totais = append(doc.Totais,
		exportLine("Total bruto", view.TotalBruto),
		exportLine("Total retido", view.TotalRetido),
		exportLine("Valor do repasse", view.ValorRepasse),
	)

	if view.RepasseDivergente && view.RepasseDeclarado != nil {
		doc.Notas = append(doc.Notas, "Valor de repasse informado pelo sistema: "+view.RepasseDeclarado.Formatado+
			". O valor acima é a soma da distribuição.")
	}
	if view.Observacao != "" && view.Observacao != format.NotInformed {
		doc.Notas = append(doc.Notas, "Observação: "+view.Observacao)
	}
	return doc
}

func exportLines(items []LineItem) []export.Line {
	lines := make([]export.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, exportLine(it.Descricao, it.Valor))
	}
	return lines
}

func exportLine(desc string, a Amount) export.Line {
	return export.Line{Descricao: desc, Valor: a.Valor, Formatado: a.Formatado}
}
