// Package list реализует HTTP-обработчик перечисления клиентов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/neuroscan/admin-panel/internal/http/response"
	"github.com/neuroscan/admin-panel/internal/lib/sl"
	"github.com/neuroscan/admin-panel/internal/models"
)

// Service описывает интерфейс бизнес-логики перечисления клиентов.
type Service interface {
	List(ctx context.Context) ([]*models.Client, error)
}

// Handler обрабатывает HTTP-запросы на перечисление клиентов.
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
// @Summary Список клиентов
// @Description Возвращает все записи реестра клиентов в порядке добавления.
// @Tags Clients
// @Produce  json
// @Success 200 {array} models.Client "Записи реестра"
// @Failure 401 {object} response.AuthError "Пользователь не авторизован"
// @Router /api/clients [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list clients", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("Внутренняя ошибка сервера"))
		return
	}
	if res == nil {
		res = []*models.Client{}
	}

	log.Info("list clients", slog.Int("count", len(res)))
	render.JSON(w, r, res)
}
