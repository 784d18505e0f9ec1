package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/collections-backend-go/internal/config"
	"github.com/cmlabs-hris/collections-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/collections-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// NewRequestLogger builds the ECS-formatted JSON logger used for access logs.
func NewRequestLogger(cfg *config.Config) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "company-collections"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
}

// NewRouter mounts the API. A nil jwtService leaves the write routes unauthenticated.
func NewRouter(cfg *config.Config, logger *slog.Logger, jwtService jwt.Service, collectionHandler CollectionHandler, companyHandler CompanyHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/collections", func(r chi.Router) {
		r.Get("/", collectionHandler.List)

		r.Route("/{collectionID}", func(r chi.Router) {
			r.Get("/", collectionHandler.GetByID)

			r.Group(func(r chi.Router) {
				if jwtService != nil {
					r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
					r.Use(middleware.AuthRequired())
				}

				r.Post("/update-companies", collectionHandler.UpdateCompanies)
				r.Post("/update-all-companies", collectionHandler.UpdateAllCompanies)
			})
		})
	})

	r.Get("/companies", companyHandler.List)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
