// Package remove реализует HTTP-обработчик удаления клиента по ID.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/neuroscan/admin-panel/internal/http/response"
	"github.com/neuroscan/admin-panel/internal/lib/sl"
	clientservice "github.com/neuroscan/admin-panel/internal/services/client"
)

// Service описывает интерфейс бизнес-логики удаления клиента.
type Service interface {
	Remove(ctx context.Context, id int64) error
}

// Handler обрабатывает HTTP-запросы на удаление клиентов.
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
// @Summary Удалить клиента
// @Description Удаляет запись клиента по ID. Повторное удаление возвращает 404.
// @Tags Clients
// @Produce  json
// @Param id path int true "ID клиента"
// @Success 200 {object} response.Response "Успешное удаление"
// @Failure 400 {object} response.Response "Некорректный ID"
// @Failure 401 {object} response.AuthError "Пользователь не авторизован"
// @Failure 404 {object} response.Response "Клиент не найден"
// @Router /api/clients/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Fail("некорректный id"))
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, clientservice.ErrClientNotFound) {
			log.Info("client not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Fail("Клиент не найден"))
			return
		}
		log.Error("failed to delete client", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("Внутренняя ошибка сервера"))
		return
	}

	log.Info("client deleted", slog.Int64("id", id))
	render.JSON(w, r, response.OK())
}
