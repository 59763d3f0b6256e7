// Package pages реализует страничные обработчики панели: форма входа,
// список клиентов и профиль. Страницы намеренно минимальные — данные
// загружаются через JSON API.
package pages

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/neuroscan/admin-panel/internal/http/middlewarectx"
	"github.com/neuroscan/admin-panel/internal/lib/sl"
	"github.com/neuroscan/admin-panel/internal/models"
)

var loginTmpl = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8"><title>Вход</title></head>
<body>
<h1>Вход в панель</h1>
<form id="login-form">
  <input type="email" name="email" placeholder="Email" required>
  <input type="password" name="password" placeholder="Пароль" required>
  <button type="submit">Войти</button>
</form>
<p><a href="#" id="register-link">Регистрация</a></p>
</body>
</html>`))

var panelTmpl = template.Must(template.New("panel").Parse(`<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8"><title>Панель</title></head>
<body>
<h1>Клиенты</h1>
<div id="clients"></div>
<p><a href="/profile">Профиль</a> | <a href="/logout">Выход</a></p>
</body>
</html>`))

var profileTmpl = template.Must(template.New("profile").Parse(`<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8"><title>Профиль</title></head>
<body>
<h1>Профиль</h1>
<p>Email: {{.Email}}</p>
<p>Часовой пояс: {{.Timezone}}</p>
<p><a href="/panel">Панель</a> | <a href="/logout">Выход</a></p>
</body>
</html>`))

// Sessions описывает чтение сессии для проверки «уже вошёл».
type Sessions interface {
	Get(ctx context.Context, token string) (*models.Session, error)
}

// ProfileService описывает чтение профиля текущего пользователя.
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
}

// Handler отдаёт страницы панели.
type Handler struct {
	log      *slog.Logger
	sessions Sessions
	profiles ProfileService
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, sessions Sessions, profiles ProfileService) *Handler {
	return &Handler{
		log:      log,
		sessions: sessions,
		profiles: profiles,
	}
}

// Login отдаёт форму входа; уже аутентифицированный пользователь
// перенаправляется на панель.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middlewarectx.SessionCookie); err == nil && cookie.Value != "" {
		if _, err := h.sessions.Get(r.Context(), cookie.Value); err == nil {
			http.Redirect(w, r, "/panel", http.StatusFound)
			return
		}
	}
	h.renderPage(w, loginTmpl, nil)
}

// Panel отдаёт страницу со списком клиентов. Доступ защищён middleware.
func (h *Handler) Panel(w http.ResponseWriter, _ *http.Request) {
	h.renderPage(w, panelTmpl, nil)
}

// Profile отдаёт страницу профиля текущего пользователя.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pages.profile"

	userID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	user, err := h.profiles.GetProfile(r.Context(), userID)
	if err != nil {
		h.log.With(slog.String("op", op)).Error("failed to load profile", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.renderPage(w, profileTmpl, user)
}

func (h *Handler) renderPage(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.log.Error("failed to render page", sl.Err(err))
	}
}
