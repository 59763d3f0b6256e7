// Package events публикует события жизненного цикла клиентских записей
// в RabbitMQ. Публикация best-effort: бизнес-операция не откатывается,
// если брокер недоступен.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// Ключи маршрутизации публикуемых событий.
const (
	ClientCreated = "client.created"
	ClientDeleted = "client.deleted"
)

// ClientEvent полезная нагрузка события по клиентской записи.
type ClientEvent struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name,omitempty"`
	Status   string    `json:"status,omitempty"`
	Occurred time.Time `json:"occurred"`
}

// Publisher инкапсулирует канал AMQP и exchange для публикации.
type Publisher struct {
	ch       *amqp.Channel
	exchange string
}

// Connect устанавливает соединение с RabbitMQ с повторными попытками.
func Connect(connection string, retries int, delay time.Duration) (*amqp.Connection, error) {
	const op = "events.Connect"
	var conn *amqp.Connection
	var err error

	for range retries {
		conn, err = amqp.Dial(connection)
		if err == nil {
			return conn, nil
		}
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("%s: %w", op, err)
}

// New открывает канал и объявляет durable direct exchange для событий.
func New(conn *amqp.Connection, exchange string) (*Publisher, error) {
	const op = "events.New"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Publisher{ch: ch, exchange: exchange}, nil
}

// Publish сериализует сообщение в JSON и публикует его с данным ключом маршрутизации.
func (p *Publisher) Publish(routingKey string, message any) error {
	const op = "events.Publish"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = p.ch.Publish(
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает канал публикации.
func (p *Publisher) Close() error {
	return p.ch.Close()
}
