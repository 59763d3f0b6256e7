// Package update реализует HTTP-обработчик частичного обновления профиля.
//
// В запросе присутствуют только изменяемые поля; отсутствующие поля
// сохраняют текущие значения учётной записи.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/neuroscan/admin-panel/internal/http/middlewarectx"
	"github.com/neuroscan/admin-panel/internal/http/response"
	"github.com/neuroscan/admin-panel/internal/lib/sl"
	"github.com/neuroscan/admin-panel/internal/models"
	authservice "github.com/neuroscan/admin-panel/internal/services/auth"
)

// Service описывает интерфейс бизнес-логики обновления профиля.
type Service interface {
	UpdateProfile(ctx context.Context, userID int64, upd models.ProfileUpdate) error
}

// Handler обрабатывает HTTP-запросы на обновление профиля.
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
// @Summary Обновить профиль
// @Description Частично обновляет профиль текущего пользователя: переданные поля заменяются, остальные не меняются.
// @Tags Profile
// @Accept  json
// @Produce  json
// @Param request body models.ProfileUpdate true "Изменяемые поля профиля"
// @Success 200 {object} response.Response "Успешное обновление или занятый email"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 401 {object} response.AuthError "Пользователь не авторизован"
// @Router /api/profile/update [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Fail("некорректный запрос"))
		return
	}

	userID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok {
		log.Error("user id not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Unauthorized())
		return
	}

	if err := h.service.UpdateProfile(r.Context(), userID, req); err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			log.Info("email already registered")
			render.JSON(w, r, response.Fail("Email уже зарегистрирован"))
			return
		}
		log.Error("failed to update profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("Внутренняя ошибка сервера"))
		return
	}

	log.Info("profile updated", slog.Int64("user_id", userID))
	render.JSON(w, r, response.OK())
}
