// Package create реализует HTTP-обработчик добавления клиента в реестр.
//
// Статус в запросе необязателен: пустое значение заменяется на Ожидание,
// значение вне допустимого набора отклоняется.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/neuroscan/admin-panel/internal/http/response"
	"github.com/neuroscan/admin-panel/internal/lib/sl"
	"github.com/neuroscan/admin-panel/internal/models"
	clientservice "github.com/neuroscan/admin-panel/internal/services/client"
)

// Service описывает интерфейс бизнес-логики добавления клиента.
type Service interface {
	Create(ctx context.Context, req models.DummyClient) (int64, error)
}

// Handler обрабатывает HTTP-запросы на добавление клиентов.
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
// @Summary Добавить клиента
// @Description Создает запись клиента. Возвращает ID созданной записи.
// @Tags Clients
// @Accept  json
// @Produce  json
// @Param request body models.DummyClient true "Данные нового клиента"
// @Success 200 {object} response.IDResponse "Успешное создание записи"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 401 {object} response.AuthError "Пользователь не авторизован"
// @Failure 422 {object} response.Response "Ошибка валидации или недопустимый статус"
// @Router /api/clients [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyClient
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Fail("некорректный запрос"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, clientservice.ErrInvalidStatus) {
			log.Info("invalid client status", slog.String("status", req.Status))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Fail("Недопустимый статус клиента"))
			return
		}
		log.Error("failed to create client", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("Внутренняя ошибка сервера"))
		return
	}

	log.Info("client created", slog.Int64("id", id))
	render.JSON(w, r, response.OKWithID(id))
}
