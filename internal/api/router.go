package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/slumberlog/sleep-diary/docs"
	"github.com/slumberlog/sleep-diary/internal/api/handler"
	"github.com/slumberlog/sleep-diary/internal/api/middleware"
	"github.com/slumberlog/sleep-diary/internal/service"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	logger             *zap.Logger
	authService        service.AuthService
	authHandler        *handler.AuthHandler
	sleepRecordHandler *handler.SleepRecordHandler
	statisticsHandler  *handler.StatisticsHandler
	adviceHandler      *handler.AdviceHandler
}

func NewRouter(
	logger *zap.Logger,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	sleepRecordHandler *handler.SleepRecordHandler,
	statisticsHandler *handler.StatisticsHandler,
	adviceHandler *handler.AdviceHandler,
) *Router {
	return &Router{
		logger:             logger,
		authService:        authService,
		authHandler:        authHandler,
		sleepRecordHandler: sleepRecordHandler,
		statisticsHandler:  statisticsHandler,
		adviceHandler:      adviceHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Auth
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", rt.authHandler.Register)
			r.Post("/login", rt.authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(rt.authService))
				r.Post("/logout", rt.authHandler.Logout)
				r.Get("/me", rt.authHandler.Me)
			})
		})

		// Everything below requires a session
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(rt.authService))

			r.Route("/sleep-records", func(r chi.Router) {
				r.Post("/", rt.sleepRecordHandler.Create)
				r.Get("/", rt.sleepRecordHandler.List)
				r.Get("/{recordId}", rt.sleepRecordHandler.GetByID)
				r.Patch("/{recordId}", rt.sleepRecordHandler.Update)
				r.Delete("/{recordId}", rt.sleepRecordHandler.Delete)
			})

			r.Get("/statistics", rt.statisticsHandler.Get)

			r.Route("/advice", func(r chi.Router) {
				r.Get("/", rt.adviceHandler.Get)
				r.Post("/feedback", rt.adviceHandler.PostFeedback)
			})
		})
	})

	return r
}
