// Package login реализует HTTP-обработчик входа пользователя.
//
// Принимает JSON с email и паролем, проверяет учётные данные через сервис
// аутентификации и при успехе устанавливает cookie серверной сессии.
// Неверные учётные данные отдаются одним и тем же сообщением вне зависимости
// от того, существует ли такой email.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/neuroscan/admin-panel/internal/http/middlewarectx"
	"github.com/neuroscan/admin-panel/internal/http/response"
	"github.com/neuroscan/admin-panel/internal/lib/sl"
	authservice "github.com/neuroscan/admin-panel/internal/services/auth"
)

// Request — структура входных данных для входа.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Handler обрабатывает HTTP-запросы на вход.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис аутентификации
	validate *validator.Validate // Валидатор для проверки входных данных
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход пользователя
// @Description Проверяет email и пароль, открывает серверную сессию и возвращает адрес перехода.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} response.Response "Успешный вход или бизнес-ошибка"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router / [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Fail("некорректный запрос"))
		return
	}
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			log.Info("invalid credentials", slog.String("email", req.Email))
			render.JSON(w, r, response.Fail("Неверный email или пароль"))
			return
		}
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("Внутренняя ошибка сервера"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middlewarectx.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	log.Info("login success", slog.String("email", req.Email))
	render.JSON(w, r, response.OKRedirect("/panel"))
}
