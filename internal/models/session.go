package models

import "time"

// Session серверная запись сессии, хранится в redis под ключом session:<token>.
// Токен клиенту отдаётся в cookie и сам по себе никаких данных не несёт.
type Session struct {
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
