// Package adminpanel предоставляет маршруты приложения.
package adminpanel

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/neuroscan/admin-panel/internal/http/handlers/auth/login"
	"github.com/neuroscan/admin-panel/internal/http/handlers/auth/logout"
	"github.com/neuroscan/admin-panel/internal/http/handlers/auth/register"
	clientcreate "github.com/neuroscan/admin-panel/internal/http/handlers/client/create"
	clientlist "github.com/neuroscan/admin-panel/internal/http/handlers/client/list"
	clientremove "github.com/neuroscan/admin-panel/internal/http/handlers/client/remove"
	"github.com/neuroscan/admin-panel/internal/http/handlers/pages"
	"github.com/neuroscan/admin-panel/internal/http/handlers/profile/changepassword"
	profileupdate "github.com/neuroscan/admin-panel/internal/http/handlers/profile/update"
	"github.com/neuroscan/admin-panel/internal/http/middlewarectx"
	"github.com/neuroscan/admin-panel/internal/metrics"
	"github.com/neuroscan/admin-panel/internal/session"
	authservice "github.com/neuroscan/admin-panel/internal/services/auth"
	clientservice "github.com/neuroscan/admin-panel/internal/services/client"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authSvc *authservice.Service, clientSvc *clientservice.Service, sessions *session.Store) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		metrics.Middleware,
	)

	pageHandlers := pages.New(logger, sessions, authSvc)

	// Открытые конечные точки
	r.Get("/", pageHandlers.Login)
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/", login.New(logger, authSvc).ServeHTTP)
		r.Post("/register", register.New(logger, authSvc).ServeHTTP)
	})
	r.Get("/logout", logout.New(logger, authSvc).ServeHTTP)

	// Страницы, требующие сессии: анонимов уводим на форму входа
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.PageSessionMiddleware(sessions, logger))
		r.Get("/panel", pageHandlers.Panel)
		r.Get("/profile", pageHandlers.Profile)
	})

	// JSON API, требующее сессии: анонимам отвечаем 401
	r.Route("/api", func(r chi.Router) {
		r.Use(middlewarectx.SessionMiddleware(sessions, logger))
		r.Get("/clients", clientlist.New(logger, clientSvc).ServeHTTP)
		r.Post("/clients", clientcreate.New(logger, clientSvc).ServeHTTP)
		r.Delete("/clients/{id}", clientremove.New(logger, clientSvc).ServeHTTP)
		r.Post("/profile/update", profileupdate.New(logger, authSvc).ServeHTTP)
		r.Post("/profile/change-password", changepassword.New(logger, authSvc).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
