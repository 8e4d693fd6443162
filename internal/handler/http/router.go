package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/newera-construction/siteledger-backend-go/internal/config"
	"github.com/newera-construction/siteledger-backend-go/internal/handler/http/middleware"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	workerHandler WorkerHandler,
	projectHandler ProjectHandler,
	materialHandler MaterialHandler,
	machineryHandler MachineryHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "siteledger"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Submit)
				r.Get("/", attendanceHandler.List)
			})

			r.Route("/workers", func(r chi.Router) {
				r.Post("/", workerHandler.Create)
				r.Get("/", workerHandler.List)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", workerHandler.Get)
					r.Put("/", workerHandler.Update)
					r.Get("/summary", attendanceHandler.MonthlySummary)
					r.Get("/assignments", projectHandler.ListWorkerAssignments)

					r.Route("/advances", func(r chi.Router) {
						r.Post("/", workerHandler.CreateAdvance)
						r.Get("/", workerHandler.ListAdvances)
					})
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", projectHandler.Create)
				r.Get("/", projectHandler.List)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", projectHandler.Get)
					r.Put("/", projectHandler.Update)

					r.Route("/workers", func(r chi.Router) {
						r.Post("/", projectHandler.AssignWorker)
						r.Get("/", projectHandler.ListWorkers)
						r.Put("/{workerID}/end", projectHandler.EndAssignment)
					})

					r.Route("/materials", func(r chi.Router) {
						r.Post("/", materialHandler.CreateUsage)
						r.Get("/", materialHandler.ListUsage)
					})

					r.Route("/machinery", func(r chi.Router) {
						r.Post("/", machineryHandler.CreateUsage)
						r.Get("/", machineryHandler.ListUsage)
					})
				})
			})
		})
	})
	return r
}
