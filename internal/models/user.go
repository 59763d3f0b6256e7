// Package models содержит доменные модели панели: учётные записи,
// клиентские записи и серверные сессии.
package models

import "time"

// DefaultTimezone часовой пояс, присваиваемый учётной записи при регистрации.
const DefaultTimezone = "UTC +03:00 Europe/Moscow"

// User представляет зарегистрированного пользователя панели.
type User struct {
	ID                int64     // Уникальный идентификатор пользователя
	Email             string    // Электронная почта (уникальная)
	Phone             *string   // Телефон, может отсутствовать
	PasswordHash      string    // Хэш пароля пользователя
	EmailConfirmed    bool      // Флаг подтверждения почты, хранится, но не проверяется
	Timezone          string    // Часовой пояс пользователя
	NotificationEmail *string   // Почта для уведомлений, если отличается от основной
	NotificationPhone *string   // Телефон для уведомлений, если отличается от основного
	CreatedAt         time.Time // Дата регистрации
}

// ProfileUpdate описывает частичное обновление профиля:
// nil-поле означает "оставить как есть".
type ProfileUpdate struct {
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Timezone          *string `json:"timezone,omitempty"`
	NotificationEmail *string `json:"notification_email,omitempty"`
	NotificationPhone *string `json:"notification_phone,omitempty"`
}
