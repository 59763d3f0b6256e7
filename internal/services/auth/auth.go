// Package auth содержит бизнес-логику регистрации, входа и управления
// профилем пользователя панели.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/neuroscan/admin-panel/internal/lib/password"
	"github.com/neuroscan/admin-panel/internal/models"
	"github.com/neuroscan/admin-panel/internal/storage/repository"
)

// Ошибки бизнес-уровня, транслируемые обработчиками в ответы клиенту.
var (
	// ErrEmailTaken email уже занят другой учётной записью.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials неверная пара email/пароль. Одна и та же ошибка
	// для несуществующего пользователя и неверного пароля, чтобы не давать
	// перечислять зарегистрированные адреса.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordMismatch новый пароль и его подтверждение не совпали.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int64, error)
	// GetUserByEmail возвращает пользователя по email или repository.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID возвращает пользователя по ID или repository.ErrUserNotFound.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	// UpdateUserProfile применяет частичное обновление профиля.
	UpdateUserProfile(ctx context.Context, id int64, upd models.ProfileUpdate) error
	// UpdateUserPassword заменяет хэш пароля.
	UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error
}

// SessionStore описывает серверное хранилище сессий.
type SessionStore interface {
	// Create открывает сессию пользователя и возвращает токен.
	Create(ctx context.Context, userID int64) (string, error)
	// Delete закрывает сессию по токену.
	Delete(ctx context.Context, token string) error
}

// Service отвечает за регистрацию, авторизацию и управление профилем.
type Service struct {
	users    UserRepository
	sessions SessionStore
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserRepository, sessions SessionStore, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		log:      log,
	}
}

// Register создает нового пользователя с хэшированием пароля и сразу
// открывает для него сессию. Возвращает токен сессии.
func (s *Service) Register(ctx context.Context, email, phone, rawPassword string) (string, error) {
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return "", err
	}

	hashed, err := password.Hash(rawPassword)
	if err != nil {
		return "", err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		Timezone:     models.DefaultTimezone,
	}
	if phone != "" {
		user.Phone = &phone
	}

	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		// Гонка двух регистраций на один email решается уникальным индексом.
		if errors.Is(err, repository.ErrUserExists) {
			return "", ErrEmailTaken
		}
		return "", err
	}
	s.log.Info("registered new user", slog.Int64("id", id))

	return s.sessions.Create(ctx, id)
}

// Login проверяет пароль пользователя и открывает сессию.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := password.Compare(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.sessions.Create(ctx, user.ID)
}

// Logout закрывает сессию. Безусловная операция: отсутствие сессии не ошибка.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// GetProfile возвращает учётную запись пользователя.
func (s *Service) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

// UpdateProfile применяет частичное обновление профиля: отсутствующие
// в запросе поля сохраняют текущие значения.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, upd models.ProfileUpdate) error {
	if err := s.users.UpdateUserProfile(ctx, userID, upd); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return ErrEmailTaken
		}
		return err
	}
	s.log.Info("updated user profile", slog.Int64("id", userID))
	return nil
}

// ChangePassword сверяет подтверждение и сохраняет новый хэш пароля.
func (s *Service) ChangePassword(ctx context.Context, userID int64, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	hashed, err := password.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdateUserPassword(ctx, userID, hashed); err != nil {
		return err
	}
	s.log.Info("changed user password", slog.Int64("id", userID))
	return nil
}
