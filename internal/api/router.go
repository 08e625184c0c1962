package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/imobiliaria/portal-locacao/internal/api/handlers"
	custommiddleware "github.com/imobiliaria/portal-locacao/internal/api/middleware"
	"github.com/imobiliaria/portal-locacao/internal/auth"
	"github.com/imobiliaria/portal-locacao/internal/config"
	"github.com/imobiliaria/portal-locacao/internal/render"
	"github.com/imobiliaria/portal-locacao/internal/service"
)

// Services bundles everything the handlers depend on.
type Services struct {
	System     *service.SystemService
	Statements *service.StatementService
	Exports    *service.ExportService
	Clients    *service.ClientDirectoryService
	Forms      *service.FormService
	Search     *service.SearchService
	Recent     *service.RecentSearchService
	Entities   *service.EntityService
	Profiles   *service.ProfileService
	Renderer   *render.Renderer
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(logger))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.Handle("/metrics", promhttp.Handler())

	statementHandler := handlers.NewStatementHandler(svc.Statements, svc.Exports, svc.Clients)
	entityHandler := handlers.NewEntityHandler(svc.Entities, svc.Profiles)
	identity := auth.NewMiddleware(cfg.Auth.JWTSecret, cfg.Auth.SessionCookie, cfg.Auth.SessionCookieTTL, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/prestacoes/{id}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateIDMiddleware)
			r.Get("/", statementHandler.Statement)
			r.Get("/export.pdf", statementHandler.ExportPDF)
			r.Get("/export.xlsx", statementHandler.ExportXLSX)
			r.Get("/pdf", statementHandler.BackendPDF)
		})

		r.Post("/export/raster", statementHandler.Raster)

		r.Route("/prestacao-contas", func(r chi.Router) {
			formHandler := handlers.NewFormHandler(svc.Forms)
			r.Get("/clientes", statementHandler.Clientes)
			r.Get("/{cliente}/{ano}/{mes}", statementHandler.Monthly)
			r.Post("/lancamentos", formHandler.CreateLancamento)
			r.Post("/descontos", formHandler.CreateDesconto)
			r.Put("/pagamento-detalhes", formHandler.UpdatePagamentoDetalhes)
		})

		r.Route("/search", func(r chi.Router) {
			searchHandler := handlers.NewSearchHandler(svc.Search, svc.Recent)
			r.Use(identity.Wrap)
			r.Get("/", searchHandler.Search)
			r.Get("/live", searchHandler.Live)
			r.Get("/recent", searchHandler.Recent)
			r.Delete("/recent", searchHandler.ClearRecent)
		})

		r.With(custommiddleware.ValidateIDMiddleware).Get("/entities/{kind}/{id}", entityHandler.Detail)
		r.With(custommiddleware.ValidateIDMiddleware).Get("/locadores/{id}/perfil", entityHandler.Profile)
	})

	// Server-rendered pages
	r.Group(func(r chi.Router) {
		pageHandler := handlers.NewPageHandler(svc.Renderer, svc.Statements, svc.Entities, svc.Profiles, svc.Search, logger)
		r.Use(identity.Wrap)
		r.With(custommiddleware.ValidateIDMiddleware).Get("/prestacoes/{id}", pageHandler.Statement)
		r.Get("/prestacao-contas/{cliente}/{ano}/{mes}", pageHandler.Monthly)
		r.With(custommiddleware.ValidateIDMiddleware).Get("/locadores/{id}/perfil", pageHandler.Profile)
		r.With(custommiddleware.ValidateIDMiddleware).Get("/entidades/{kind}/{id}", pageHandler.Entity)
		r.Get("/busca", pageHandler.Search)
	})

	return r
}
