// Package password реализует функции для безопасного хеширования и проверки паролей.
//
// Hash создает bcrypt-хеш пароля для безопасного хранения.
// Compare сравнивает сохранённый bcrypt-хеш с введённым паролем.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash принимает пароль пользователя и возвращает его bcrypt‑хэш.
// Пароль в открытом виде после этого нигде не сохраняется.
func Hash(password string) (string, error) {
	const op = "password.Hash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// Compare сравнивает bcrypt‑хэш с введённым паролем.
// Возвращает nil, если пароль соответствует хэшу, иначе — ошибку.
func Compare(originalHash, externalPassword string) error {
	const op = "password.Compare"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
