package repository

import (
	"context"
	"fmt"

	"github.com/neuroscan/admin-panel/internal/models"
)

// CreateClient вставляет новую запись клиента и возвращает её ID.
func (s *Storage) CreateClient(ctx context.Context, client models.Client) (int64, error) {
	const op = "storage.CreateClient"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO clients (name, email, phone, status)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		client.Name, client.Email, client.Phone, client.Status).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListClients возвращает все записи клиентов в порядке добавления.
func (s *Storage) ListClients(ctx context.Context) ([]*models.Client, error) {
	const op = "storage.ListClients"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, email, phone, status
			  FROM clients
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Client
	for rows.Next() {
		var item models.Client
		if err := rows.Scan(&item.ID, &item.Name, &item.Email,
			&item.Phone, &item.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemoveClient удаляет клиента по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveClient(ctx context.Context, id int64) (int64, error) {
	const op = "storage.RemoveClient"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM clients WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}
