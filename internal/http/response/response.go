// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков: флаг успеха с адресом
// перехода, бизнес-ошибки с локализованным сообщением и ответ 401.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Success — признак успеха операции.
// Поле Message — локализованный текст ошибки (при неуспехе).
// Поле Redirect — адрес перехода после успешной операции (опционально).
type Response struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// IDResponse — успешный ответ с идентификатором созданной записи.
type IDResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// AuthError — тело ответа для неавторизованных запросов к API.
type AuthError struct {
	Error string `json:"error" example:"Unauthorized"`
}

// OK возвращает успешный Response без дополнительных данных.
func OK() Response {
	return Response{Success: true}
}

// OKRedirect возвращает успешный Response с адресом перехода.
func OKRedirect(target string) Response {
	return Response{
		Success:  true,
		Redirect: target,
	}
}

// OKWithID возвращает успешный ответ с ID созданной записи.
func OKWithID(id int64) IDResponse {
	return IDResponse{
		Success: true,
		ID:      id,
	}
}

// Fail возвращает Response с признаком неуспеха и переданным сообщением.
func Fail(msg string) Response {
	return Response{
		Success: false,
		Message: msg,
	}
}

// Unauthorized возвращает тело ответа 401 для маршрутов API.
func Unauthorized() AuthError {
	return AuthError{Error: "Unauthorized"}
}

// ValidationError формирует Response с признаком неуспеха на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too long", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Fail(strings.Join(errsMsgs, ", "))
}
