package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
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

func newEntityHandler(t *testing.T) (*EntityHandler, *mocks.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	return NewEntityHandler(
		service.NewEntityService(client, zap.NewNop()),
		service.NewProfileService(client, zap.NewNop()),
	), client
}

func entityRequest(kind, id, query string) *http.Request {
	return testutil.NewRequestWithURLParams(http.MethodGet,
		"/api/entities/"+kind+"/"+id+query,
		map[string]string{"kind": kind, "id": id})
}

// TestEntityHandler_Detail tests the entity detail (modal) endpoint.
//
// WHY: the kind and tab come from the URL; anything outside the closed set
// must be a 400 rather than a backend call.
func TestEntityHandler_Detail(t *testing.T) {
	t.Run("returns the expanded detail with breadcrumbs", func(t *testing.T) {
		handler, client := newEntityHandler(t)
		client.EXPECT().GetEntity(gomock.Any(), model.KindLocador, "1").
			Return(testutil.NewLocador("1", "FERNANDO DELFINO"), nil)

		w := httptest.NewRecorder()
		handler.Detail(w, entityRequest("locadores", "1", "?trail=imovel:5"))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var detail service.EntityDetail
		require.NoError(t, json.NewDecoder(w.Body).Decode(&detail))
		assert.Equal(t, "FERNANDO DELFINO", detail.Card.Title)
		assert.Equal(t, "dados", detail.ActiveTab)
		require.Len(t, detail.Breadcrumbs, 2)
		assert.Equal(t, model.KindImovel, detail.Breadcrumbs[0].Kind)
		assert.Zero(t, detail.Card.Hidden)
	})

	t.Run("compact mode trims the card", func(t *testing.T) {
		handler, client := newEntityHandler(t)
		client.EXPECT().GetEntity(gomock.Any(), model.KindLocador, "1").
			Return(testutil.NewLocador("1", "FERNANDO DELFINO"), nil)

		w := httptest.NewRecorder()
		handler.Detail(w, entityRequest("locador", "1", "?mode=compact"))

		require.Equal(t, http.StatusOK, w.Code)
		var detail service.EntityDetail
		require.NoError(t, json.NewDecoder(w.Body).Decode(&detail))
		assert.LessOrEqual(t, len(detail.Card.Rows), 3)
	})

	tests := []struct {
		name  string
		kind  string
		query string
	}{
		{"unknown kind", "fiador", ""},
		{"unknown tab", "contrato", "?tab=contas"},
		{"invalid mode", "locador", "?mode=full"},
	}
	for _, tt := range tests {
		t.Run(tt.name+" returns 400", func(t *testing.T) {
			handler, _ := newEntityHandler(t)

			w := httptest.NewRecorder()
			handler.Detail(w, entityRequest(tt.kind, "1", tt.query))

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}

	t.Run("missing entity returns 404", func(t *testing.T) {
		handler, client := newEntityHandler(t)
		client.EXPECT().GetEntity(gomock.Any(), model.KindImovel, "8").
			Return(nil, fmt.Errorf("%w: GET /api/imoveis/8", apperrors.ErrNotFound))

		w := httptest.NewRecorder()
		handler.Detail(w, entityRequest("imoveis", "8", ""))

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

// TestEntityHandler_Profile tests the landlord profile endpoint.
//
// WHY: a failed related list must not take down the whole profile.
func TestEntityHandler_Profile(t *testing.T) {
	t.Run("degrades failed sections", func(t *testing.T) {
		handler, client := newEntityHandler(t)
		client.EXPECT().GetEntity(gomock.Any(), model.KindLocador, "1").
			Return(testutil.NewLocador("1", "FERNANDO DELFINO"), nil)
		client.EXPECT().ListLocadorImoveis(gomock.Any(), "1").
			Return([]model.Imovel{testutil.NewImovel("10", "AP-10", "1")}, nil)
		client.EXPECT().ListLocadorContratos(gomock.Any(), "1").
			Return(nil, apperrors.ErrBackendUnavailable)
		client.EXPECT().ListLocadorPrestacoes(gomock.Any(), "1").
			Return([]model.Statement{}, nil)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/locadores/1/perfil", map[string]string{"id": "1"})
		w := httptest.NewRecorder()
		handler.Profile(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var profile service.LocadorProfile
		require.NoError(t, json.NewDecoder(w.Body).Decode(&profile))
		assert.Len(t, profile.Imoveis.Cards, 1)
		assert.NotEmpty(t, profile.Contratos.Erro)
	})

	t.Run("missing landlord returns 404", func(t *testing.T) {
		handler, client := newEntityHandler(t)
		client.EXPECT().GetEntity(gomock.Any(), model.KindLocador, "2").
			Return(nil, fmt.Errorf("%w: GET /api/locadores/2", apperrors.ErrNotFound))
		client.EXPECT().ListLocadorImoveis(gomock.Any(), "2").Return(nil, nil).AnyTimes()
		client.EXPECT().ListLocadorContratos(gomock.Any(), "2").Return(nil, nil).AnyTimes()
		client.EXPECT().ListLocadorPrestacoes(gomock.Any(), "2").Return(nil, nil).AnyTimes()

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/locadores/2/perfil", map[string]string{"id": "2"})
		w := httptest.NewRecorder()
		handler.Profile(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}
