package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/magabrotheeeer/trial-tracker/internal/models"
)

// ListUsers возвращает всех пользователей основного источника в порядке регистрации.
func (s *Storage) ListUsers(ctx context.Context) ([]models.UserRow, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, COALESCE(full_name, ''), COALESCE(username, ''), COALESCE(role, ''),
			      subscribed, created_at, COALESCE(email, ''), last_sign_in
			  FROM profiles
			  ORDER BY created_at, id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.UserRow
	for rows.Next() {
		var u models.UserRow
		var lastSignIn sql.NullTime
		if err = rows.Scan(&u.ID, &u.FullName, &u.Username, &u.Role,
			&u.Subscribed, &u.CreatedAt, &u.Email, &lastSignIn); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		u.LastSignIn = nullTime(lastSignIn)
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
