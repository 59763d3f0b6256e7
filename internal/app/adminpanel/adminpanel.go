// Package adminpanel собирает приложение панели: хранилище, миграции,
// сессии в redis, необязательный брокер событий и HTTP-сервер.
package adminpanel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/neuroscan/admin-panel/internal/config"
	"github.com/neuroscan/admin-panel/internal/events"
	"github.com/neuroscan/admin-panel/internal/lib/sl"
	"github.com/neuroscan/admin-panel/internal/migrations"
	"github.com/neuroscan/admin-panel/internal/session"
	authservice "github.com/neuroscan/admin-panel/internal/services/auth"
	clientservice "github.com/neuroscan/admin-panel/internal/services/client"
	"github.com/neuroscan/admin-panel/internal/storage/repository"
)

// App агрегирует ресурсы приложения и управляет их жизненным циклом.
type App struct {
	server    *http.Server
	logger    *slog.Logger
	db        *repository.Storage
	sessions  *session.Store
	eventConn *amqp.Connection
}

// New инициализирует все зависимости и возвращает готовое к запуску приложение.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		_ = db.DB.Close()
		return nil, err
	}

	sessions, err := session.New(ctx, cfg.RedisConnection, cfg.SessionTTL)
	if err != nil {
		_ = db.DB.Close()
		return nil, err
	}

	// Брокер событий необязателен: без URL панель работает автономно.
	var eventConn *amqp.Connection
	var publisher clientservice.Events
	if cfg.RabbitURL != "" {
		eventConn, err = events.Connect(cfg.RabbitURL, 5, 2*time.Second)
		if err != nil {
			logger.Warn("event broker unavailable, continuing without events", sl.Err(err))
		} else {
			publisher, err = events.New(eventConn, cfg.Exchange)
			if err != nil {
				_ = eventConn.Close()
				_ = sessions.Db.Close()
				_ = db.DB.Close()
				return nil, err
			}
		}
	}

	authSvc := authservice.New(db, sessions, logger)
	clientSvc := clientservice.New(db, publisher, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authSvc, clientSvc, sessions)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:    srv,
		logger:    logger,
		db:        db,
		sessions:  sessions,
		eventConn: eventConn,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		_ = a.sessions.Db.Close()
		if a.eventConn != nil {
			_ = a.eventConn.Close()
		}
		return err
	}
}
