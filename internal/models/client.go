package models

// Статусы жизненного цикла клиентской записи.
const (
	StatusPending   = "Ожидание"
	StatusConfirmed = "Подтвержден"
	StatusRejected  = "Отклонен"
)

// Client представляет запись о клиенте (лиде) в реестре.
type Client struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// DummyClient используется для приёма данных клиента из JSON-запроса,
// прежде чем конвертировать их в Client. Статус может отсутствовать —
// тогда подставляется StatusPending.
type DummyClient struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required"`
	Status string `json:"status"`
}

// ValidClientStatus сообщает, входит ли статус в допустимый набор.
func ValidClientStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusRejected:
		return true
	}
	return false
}
