// Package changepassword реализует HTTP-обработчик смены пароля.
//
// Новый пароль и его подтверждение сверяются побайтово; при несовпадении
// хранимый хэш не меняется.
package changepassword

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

// Request — структура входных данных для смены пароля.
type Request struct {
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики смены пароля.
type Service interface {
	ChangePassword(ctx context.Context, userID int64, newPassword, confirmPassword string) error
}

// Handler обрабатывает HTTP-запросы на смену пароля.
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
// @Summary Сменить пароль
// @Description Сверяет новый пароль с подтверждением и сохраняет новый хэш.
// @Tags Profile
// @Accept  json
// @Produce  json
// @Param request body Request true "Новый пароль и подтверждение"
// @Success 200 {object} response.Response "Успешная смена или несовпадение паролей"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 401 {object} response.AuthError "Пользователь не авторизован"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /api/profile/change-password [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.changepassword"

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

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok {
		log.Error("user id not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Unauthorized())
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, req.NewPassword, req.ConfirmPassword); err != nil {
		if errors.Is(err, authservice.ErrPasswordMismatch) {
			log.Info("password confirmation mismatch", slog.Int64("user_id", userID))
			render.JSON(w, r, response.Fail("Пароли не совпадают"))
			return
		}
		log.Error("failed to change password", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("Внутренняя ошибка сервера"))
		return
	}

	log.Info("password changed", slog.Int64("user_id", userID))
	render.JSON(w, r, response.OK())
}
