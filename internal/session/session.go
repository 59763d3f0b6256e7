// Package session реализует серверное хранилище сессий поверх redis.
//
// Клиенту выдаётся непрозрачный uuid-токен, сам токен никаких данных
// не содержит: запись сессии с ID пользователя живёт на сервере под
// ключом session:<token> с TTL из конфига. Истечение TTL эквивалентно
// выходу из системы.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/neuroscan/admin-panel/internal/config"
	"github.com/neuroscan/admin-panel/internal/models"
)

// ErrNotFound возвращается, когда сессия отсутствует или истекла.
var ErrNotFound = errors.New("session not found")

// Store хранилище сессий в redis.
type Store struct {
	Db  *redis.Client
	ttl time.Duration
}

// New подключается к redis и возвращает хранилище сессий.
func New(ctx context.Context, cfg config.RedisConnection, ttl time.Duration) (*Store, error) {
	const op = "session.New"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{Db: db, ttl: ttl}, nil
}

func sessionKey(token string) string {
	return "session:" + token
}

// Create открывает новую сессию для пользователя и возвращает токен.
func (s *Store) Create(ctx context.Context, userID int64) (string, error) {
	const op = "session.Create"
	record := models.Session{
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	jsonData, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	token := uuid.NewString()
	if err := s.Db.Set(ctx, sessionKey(token), jsonData, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Get возвращает запись сессии по токену и продлевает её TTL.
func (s *Store) Get(ctx context.Context, token string) (*models.Session, error) {
	const op = "session.Get"
	val, err := s.Db.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var record models.Session
	if err = json.Unmarshal([]byte(val), &record); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Скользящее продление: активная сессия не истекает.
	if err = s.Db.Expire(ctx, sessionKey(token), s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &record, nil
}

// Delete закрывает сессию. Отсутствие ключа ошибкой не считается.
func (s *Store) Delete(ctx context.Context, token string) error {
	const op = "session.Delete"
	if err := s.Db.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
