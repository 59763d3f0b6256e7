// Package client содержит бизнес-логику работы с реестром клиентов:
// создание со статусом по умолчанию, перечисление и удаление.
package client

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/neuroscan/admin-panel/internal/events"
	"github.com/neuroscan/admin-panel/internal/lib/sl"
	"github.com/neuroscan/admin-panel/internal/models"
)

// Ошибки бизнес-уровня реестра клиентов.
var (
	// ErrClientNotFound клиент с таким ID отсутствует.
	ErrClientNotFound = errors.New("client not found")
	// ErrInvalidStatus статус вне набора Ожидание/Подтвержден/Отклонен.
	ErrInvalidStatus = errors.New("invalid client status")
)

// ClientRepository определяет методы для работы с клиентами в хранилище.
type ClientRepository interface {
	// CreateClient добавляет запись клиента и возвращает её ID.
	CreateClient(ctx context.Context, client models.Client) (int64, error)
	// ListClients возвращает все записи в порядке добавления.
	ListClients(ctx context.Context) ([]*models.Client, error)
	// RemoveClient удаляет запись по ID и возвращает количество удалённых строк.
	RemoveClient(ctx context.Context, id int64) (int64, error)
}

// Events описывает публикацию событий жизненного цикла клиента.
type Events interface {
	Publish(routingKey string, message any) error
}

// Service реализует бизнес-логику реестра клиентов.
type Service struct {
	repo   ClientRepository
	events Events
	log    *slog.Logger
}

// New создает новый экземпляр Service. events может быть nil,
// тогда события не публикуются.
func New(repo ClientRepository, ev Events, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		events: ev,
		log:    log,
	}
}

// Create создает запись клиента. Пустой статус заменяется на Ожидание,
// статус вне допустимого набора отклоняется.
func (s *Service) Create(ctx context.Context, req models.DummyClient) (int64, error) {
	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.ValidClientStatus(status) {
		return 0, ErrInvalidStatus
	}

	client := models.Client{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: status,
	}
	id, err := s.repo.CreateClient(ctx, client)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new client", slog.Int64("id", id))

	s.publish(events.ClientCreated, events.ClientEvent{
		ID:       id,
		Name:     client.Name,
		Status:   client.Status,
		Occurred: time.Now().UTC(),
	})
	return id, nil
}

// List возвращает все записи реестра.
func (s *Service) List(ctx context.Context) ([]*models.Client, error) {
	return s.repo.ListClients(ctx)
}

// Remove удаляет клиента по ID. Отсутствие записи — ErrClientNotFound.
func (s *Service) Remove(ctx context.Context, id int64) error {
	count, err := s.repo.RemoveClient(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrClientNotFound
	}
	s.log.Info("removed client", slog.Int64("id", id))

	s.publish(events.ClientDeleted, events.ClientEvent{
		ID:       id,
		Occurred: time.Now().UTC(),
	})
	return nil
}

// publish отправляет событие в брокер, если он сконфигурирован.
// Ошибка публикации не прерывает бизнес-операцию.
func (s *Service) publish(routingKey string, event events.ClientEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(routingKey, event); err != nil {
		s.log.Warn("failed to publish event", slog.String("routing_key", routingKey), sl.Err(err))
	}
}
