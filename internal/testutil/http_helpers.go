package testutil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
)

// NewRequestWithURLParams builds a request as chi would hand it to a handler
// mounted on a pattern such as /api/prestacoes/{id}. The target may carry a
// query string.
//
//	req := testutil.NewRequestWithURLParams(http.MethodGet,
//	    "/api/entities/locador/7?tab=contratos",
//	    map[string]string{"kind": "locador", "id": "7"})
func NewRequestWithURLParams(method, target string, params map[string]string) *http.Request {
	return withRouteParams(httptest.NewRequest(method, target, nil), params)
}

// NewRequestWithQueryParams builds a GET-style request whose query string is
// encoded from params, e.g. {"q": "são paulo"} for the search endpoint.
func NewRequestWithQueryParams(method, path string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	q := req.URL.Query()
	for key, value := range params {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()
	return req
}

// NewJSONRequest builds a form submission with a JSON body.
func NewJSONRequest(method, target, body string) *http.Request {
	return newBodyRequest(method, target, "application/json", strings.NewReader(body))
}

func newBodyRequest(method, target, contentType string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", contentType)
	return req
}

func withRouteParams(req *http.Request, params map[string]string) *http.Request {
	if len(params) == 0 {
		return req
	}
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
