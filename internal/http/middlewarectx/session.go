// Package middlewarectx содержит HTTP middleware проверки серверной сессии.
//
// Токен сессии читается из cookie, запись сессии поднимается из хранилища,
// и при успехе ID пользователя добавляется в контекст запроса. Маршруты API
// отвечают 401 с JSON-телом, страничные маршруты перенаправляют на форму входа.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/neuroscan/admin-panel/internal/http/response"
	"github.com/neuroscan/admin-panel/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// UserID — ключ для ID пользователя в контексте.
const UserID Key = "user_id"

// SessionCookie имя cookie с токеном сессии.
const SessionCookie = "session_id"

// SessionProvider описывает чтение сессии из серверного хранилища.
type SessionProvider interface {
	Get(ctx context.Context, token string) (*models.Session, error)
}

// resolve пытается поднять сессию запроса; nil означает анонимный запрос.
func resolve(r *http.Request, sessions SessionProvider) *models.Session {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	record, err := sessions.Get(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return record
}

// SessionMiddleware возвращает middleware для маршрутов API: без валидной
// сессии запрос завершается ответом 401 {"error":"Unauthorized"}.
func SessionMiddleware(sessions SessionProvider, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			record := resolve(r, sessions)
			if record == nil {
				log.With(
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				).Info("request without valid session")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Unauthorized())
				return
			}

			ctx := context.WithValue(r.Context(), UserID, record.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PageSessionMiddleware возвращает middleware для страничных маршрутов:
// без валидной сессии пользователь перенаправляется на форму входа,
// тело ошибки не возвращается.
func PageSessionMiddleware(sessions SessionProvider, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.PageSessionMiddleware"

			record := resolve(r, sessions)
			if record == nil {
				log.With(
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				).Info("redirecting anonymous request to login", slog.String("path", r.URL.Path))
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), UserID, record.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
