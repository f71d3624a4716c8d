package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/atlashr/attendance-backend-go/internal/config"
	"github.com/atlashr/attendance-backend-go/internal/domain/accesspolicy"
	"github.com/atlashr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/atlashr/attendance-backend-go/internal/pkg/jwt"
	"github.com/atlashr/attendance-backend-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	Config            *config.Config
	JWTService        jwt.Service
	Resolver          accesspolicy.Resolver
	AuthHandler       AuthHandler
	AttendanceHandler AttendanceHandler
	UserHandler       UserHandler
	DashboardHandler  DashboardHandler
	SidebarHandler    SidebarHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Config.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.Config.App.FrontendURL},
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

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(metrics.Middleware)

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", deps.AuthHandler.RefreshToken)
			r.Post("/logout", deps.AuthHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", deps.AuthHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", deps.AuthHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", deps.AuthHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", deps.AttendanceHandler.List)
				r.Post("/submit-time", deps.AttendanceHandler.SubmitTime)
			})

			r.Get("/sidebar/items", deps.SidebarHandler.GetItems)

			// Elevated tiers only
			r.Group(func(r chi.Router) {
				r.Use(middleware.ElevatedRequired(deps.Resolver))

				r.Get("/dashboard/stats", deps.DashboardHandler.GetStats)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", deps.UserHandler.List)
					r.Post("/", deps.UserHandler.Create)
					r.Get("/roles", deps.UserHandler.ListRoles)
					r.Get("/departments/list", deps.UserHandler.ListDepartments)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", deps.UserHandler.Get)
						r.Put("/", deps.UserHandler.Update)
						r.Delete("/", deps.UserHandler.Delete)
					})
				})
			})
		})
	})
	return r
}
