package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/backend/mocks"
	"github.com/imobiliaria/portal-locacao/internal/model"
	"github.com/imobiliaria/portal-locacao/internal/service"
	"github.com/imobiliaria/portal-locacao/internal/testutil"
)

func newStatementHandler(t *testing.T) (*StatementHandler, *mocks.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	statements := service.NewStatementService(client, zap.NewNop())
	exports := service.NewExportService(statements, client, zap.NewNop())
	clients := service.NewClientDirectoryService(client, zap.NewNop())
	return NewStatementHandler(statements, exports, clients), client
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

// TestStatementHandler_Statement tests the reconciled statement endpoint.
//
// WHY: the status code tells the frontend whether to show "not found", a
// retry message or the statement itself.
func TestStatementHandler_Statement(t *testing.T) {
	t.Run("returns the reconciled view", func(t *testing.T) {
		handler, client := newStatementHandler(t)
		stmt := testutil.NewItemizedStatement().
			WithID(7).
			WithLancamento("termo", "Aluguel", 2000).
			WithLancamento("taxa", "Administração", 200).
			Build(t)
		client.EXPECT().GetStatement(gomock.Any(), "7").Return(stmt, nil)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/prestacoes/7", map[string]string{"id": "7"})
		w := httptest.NewRecorder()
		handler.Statement(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var view service.StatementView
		require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
		assert.Equal(t, "7", view.ID)
		assert.Len(t, view.Grupos, 4)
	})

	t.Run("returns 404 when the backend has no statement", func(t *testing.T) {
		handler, client := newStatementHandler(t)
		client.EXPECT().GetStatement(gomock.Any(), "9").
			Return(model.Statement{}, fmt.Errorf("%w: GET /api/prestacao-contas/9", apperrors.ErrNotFound))

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/prestacoes/9", map[string]string{"id": "9"})
		w := httptest.NewRecorder()
		handler.Statement(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})

	t.Run("returns 502 when the backend is unreachable", func(t *testing.T) {
		handler, client := newStatementHandler(t)
		client.EXPECT().GetStatement(gomock.Any(), "9").
			Return(model.Statement{}, fmt.Errorf("%w: dial tcp", apperrors.ErrBackendUnavailable))

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/prestacoes/9", map[string]string{"id": "9"})
		w := httptest.NewRecorder()
		handler.Statement(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Expected 502, got %d", w.Code)
		}
		var resp map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, apperrors.ErrFailedToRetrieveStatement.Error(), resp["error"])
	})
}

// TestStatementHandler_Exports tests the document download endpoints.
//
// WHY: browsers rely on Content-Type and Content-Disposition to save or
// preview the file.
func TestStatementHandler_Exports(t *testing.T) {
	t.Run("native PDF is an attachment", func(t *testing.T) {
		handler, client := newStatementHandler(t)
		client.EXPECT().GetStatement(gomock.Any(), "3").
			Return(testutil.NewItemizedStatement().WithID(3).WithLancamento("termo", "Aluguel", 100).Build(t), nil)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/prestacoes/3/export.pdf", map[string]string{"id": "3"})
		w := httptest.NewRecorder()
		handler.ExportPDF(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, service.ContentTypePDF, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "prestacao-contas-3.pdf")
		assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
	})

	t.Run("native XLSX is an attachment", func(t *testing.T) {
		handler, client := newStatementHandler(t)
		client.EXPECT().GetStatement(gomock.Any(), "3").
			Return(testutil.NewLegacyStatement().WithID(3).WithField("valor_aluguel", 900).Build(t), nil)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/prestacoes/3/export.xlsx", map[string]string{"id": "3"})
		w := httptest.NewRecorder()
		handler.ExportXLSX(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, service.ContentTypeXLSX, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "prestacao-contas-3.xlsx")
	})

	t.Run("preview=html serves the backend HTML inline", func(t *testing.T) {
		handler, client := newStatementHandler(t)
		client.EXPECT().GetStatementHTML(gomock.Any(), "3").Return([]byte("<html>ok</html>"), nil)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/prestacoes/3/pdf?preview=html", map[string]string{"id": "3"})
		w := httptest.NewRecorder()
		handler.BackendPDF(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, service.ContentTypeHTML, w.Header().Get("Content-Type"))
		assert.Empty(t, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "<html>ok</html>", w.Body.String())
	})

	t.Run("backend PDF failure returns 502", func(t *testing.T) {
		handler, client := newStatementHandler(t)
		client.EXPECT().GetStatementPDF(gomock.Any(), "3").
			Return(nil, fmt.Errorf("%w: 500", apperrors.ErrBackendStatus))

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/prestacoes/3/pdf", map[string]string{"id": "3"})
		w := httptest.NewRecorder()
		handler.BackendPDF(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Expected 502, got %d", w.Code)
		}
	})
}

// TestStatementHandler_Raster tests the image to PDF conversion endpoint.
func TestStatementHandler_Raster(t *testing.T) {
	t.Run("raw body is paginated", func(t *testing.T) {
		handler, _ := newStatementHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/export/raster?nome=extrato%20mar%C3%A7o", bytes.NewReader(pngBytes(t, 100, 300)))
		req.Header.Set("Content-Type", "image/png")
		w := httptest.NewRecorder()
		handler.Raster(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "3", w.Header().Get("X-Page-Count"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "extratomaro.pdf")
	})

	t.Run("multipart field imagem", func(t *testing.T) {
		handler, _ := newStatementHandler(t)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("imagem", "captura.png")
		require.NoError(t, err)
		_, err = part.Write(pngBytes(t, 210, 297))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/export/raster", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		handler.Raster(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "1", w.Header().Get("X-Page-Count"))
	})

	t.Run("non-image body returns 400", func(t *testing.T) {
		handler, _ := newStatementHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/export/raster", strings.NewReader("not an image"))
		w := httptest.NewRecorder()
		handler.Raster(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestStatementHandler_Clientes(t *testing.T) {
	t.Run("loads once and serves from cache", func(t *testing.T) {
		handler, client := newStatementHandler(t)
		client.EXPECT().ListClientes(gomock.Any()).
			Return([]model.Cliente{{ID: "1", Nome: "Fernando"}}, nil).Times(1)

		for n := 0; n < 2; n++ {
			w := httptest.NewRecorder()
			handler.Clientes(w, httptest.NewRequest(http.MethodGet, "/api/prestacao-contas/clientes", nil))
			require.Equal(t, http.StatusOK, w.Code)

			var clientes []model.Cliente
			require.NoError(t, json.NewDecoder(w.Body).Decode(&clientes))
			assert.Len(t, clientes, 1)
		}
	})
}

// TestStatementHandler_Monthly tests the monthly settlement endpoint.
//
// WHY: path parameters come straight from the URL and must be validated
// before reaching the backend.
func TestStatementHandler_Monthly(t *testing.T) {
	params := func(cliente, ano, mes string) map[string]string {
		return map[string]string{"cliente": cliente, "ano": ano, "mes": mes}
	}

	t.Run("returns the monthly view", func(t *testing.T) {
		handler, client := newStatementHandler(t)
		client.EXPECT().GetMonthly(gomock.Any(), "5", 2024, 3).Return(model.MonthlyStatement{
			Cliente:     "5",
			ClienteNome: "Fernando",
			Boletos:     []model.Statement{testutil.NewLegacyStatement().WithField("valor_aluguel", 1000).Build(t)},
		}, nil)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/prestacao-contas/5/2024/3", params("5", "2024", "3"))
		w := httptest.NewRecorder()
		handler.Monthly(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var view service.MonthlyView
		require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
		assert.Equal(t, "março/2024", view.Periodo)
		assert.Len(t, view.Boletos, 1)
		assert.Equal(t, 1000.0, view.TotalBruto.Valor)
	})

	tests := []struct {
		name   string
		params map[string]string
	}{
		{"invalid client", params("abc", "2024", "3")},
		{"invalid month", params("5", "2024", "13")},
		{"invalid year", params("5", "24", "3")},
	}
	for _, tt := range tests {
		t.Run(tt.name+" returns 400", func(t *testing.T) {
			handler, _ := newStatementHandler(t)

			req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/prestacao-contas/x", tt.params)
			w := httptest.NewRecorder()
			handler.Monthly(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", w.Code)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "relatrio_2024-03", sanitizeFilename("relatório_2024-03"))
	assert.Equal(t, "etcpasswd", sanitizeFilename("../etc/passwd"))
	assert.Len(t, sanitizeFilename(strings.Repeat("a", 100)), 64)
}
