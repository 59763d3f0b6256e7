// Package logout реализует HTTP-обработчик выхода из системы.
//
// Закрывает серверную сессию, сбрасывает cookie и перенаправляет на форму
// входа. Операция безусловная: отсутствие сессии не считается ошибкой.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/neuroscan/admin-panel/internal/http/middlewarectx"
	"github.com/neuroscan/admin-panel/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики выхода.
type Service interface {
	Logout(ctx context.Context, token string) error
}

// Handler обрабатывает HTTP-запросы на выход.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выход пользователя
// @Description Закрывает сессию, сбрасывает cookie и перенаправляет на форму входа.
// @Tags Auth
// @Success 302 "Перенаправление на форму входа"
// @Router /logout [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if cookie, err := r.Cookie(middlewarectx.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.service.Logout(r.Context(), cookie.Value); err != nil {
			log.Error("failed to close session", sl.Err(err))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middlewarectx.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	log.Info("logout done")
	http.Redirect(w, r, "/", http.StatusFound)
}
