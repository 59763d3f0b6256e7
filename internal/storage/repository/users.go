package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/neuroscan/admin-panel/internal/models"
)

// isUniqueViolation сообщает, вызвана ли ошибка нарушением уникального индекса.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// CreateUser сохраняет нового пользователя и возвращает его ID.
// Нарушение уникальности email транслируется в ErrUserExists.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int64
	query := `INSERT INTO users (email, phone, password_hash, timezone)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.Phone, user.PasswordHash, user.Timezone).Scan(&newID); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetUserByEmail возвращает пользователя по его email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, phone, password_hash, email_confirmed, timezone,
			      notification_email, notification_phone, created_at
			  FROM users
			  WHERE email = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, email), op)
}

// GetUserByID возвращает пользователя по его ID.
func (s *Storage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.GetUserByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, phone, password_hash, email_confirmed, timezone,
			      notification_email, notification_phone, created_at
			  FROM users
			  WHERE id = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, id), op)
}

func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	u := &models.User{}
	var phone, notificationEmail, notificationPhone sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &phone, &u.PasswordHash, &u.EmailConfirmed,
		&u.Timezone, &notificationEmail, &notificationPhone, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if phone.Valid {
		u.Phone = &phone.String
	}
	if notificationEmail.Valid {
		u.NotificationEmail = &notificationEmail.String
	}
	if notificationPhone.Valid {
		u.NotificationPhone = &notificationPhone.String
	}
	return u, nil
}

// UpdateUserProfile применяет частичное обновление профиля: nil-поля
// оставляют текущее значение колонки без изменений.
func (s *Storage) UpdateUserProfile(ctx context.Context, id int64, upd models.ProfileUpdate) error {
	const op = "storage.UpdateUserProfile"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET email = COALESCE($1, email),
			      phone = COALESCE($2, phone),
			      timezone = COALESCE($3, timezone),
			      notification_email = COALESCE($4, notification_email),
			      notification_phone = COALESCE($5, notification_phone)
			  WHERE id = $6`
	if _, err := s.DB.ExecContext(ctx, query,
		upd.Email, upd.Phone, upd.Timezone,
		upd.NotificationEmail, upd.NotificationPhone, id); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateUserPassword заменяет хэш пароля пользователя.
func (s *Storage) UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error {
	const op = "storage.UpdateUserPassword"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET password_hash = $1
			  WHERE id = $2`
	if _, err := s.DB.ExecContext(ctx, query, passwordHash, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
