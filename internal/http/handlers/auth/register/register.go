// Package register реализует HTTP-обработчик регистрации пользователя.
//
// Принимает JSON с email, телефоном и паролем; при успехе учётная запись
// создаётся, для неё сразу открывается сессия и устанавливается cookie.
package register

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

// Request — входные данные для регистрации. Телефон необязателен.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=6"`
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, email, phone, password string) (string, error)
}

// Handler обрабатывает HTTP-запросы на регистрацию.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
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
// @Summary Регистрация пользователя
// @Description Создаёт учётную запись, открывает сессию и возвращает адрес перехода.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные новой учётной записи"
// @Success 200 {object} response.Response "Успешная регистрация или занятый email"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

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

	token, err := h.service.Register(r.Context(), req.Email, req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			log.Info("email already registered", slog.String("email", req.Email))
			render.JSON(w, r, response.Fail("Email уже зарегистрирован"))
			return
		}
		log.Error("registration failed", sl.Err(err))
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

	log.Info("registration success", slog.String("email", req.Email))
	render.JSON(w, r, response.OKRedirect("/panel"))
}
