package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/trial-tracker/internal/models"
)

// GetActivity возвращает сводку геймификации пользователя или nil, если её нет.
func (s *Storage) GetActivity(ctx context.Context, userID string) (*models.ActivityRow, error) {
	const op = "storage.GetActivity"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT user_id, COALESCE(points, 0), COALESCE(streak, 0), last_active_date, updated_at
			  FROM user_activity
			  WHERE user_id = $1`
	row, err := scanActivity(s.DB.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &row, nil
}

// ListQuotes возвращает цитаты пользователя.
func (s *Storage) ListQuotes(ctx context.Context, userID string) ([]models.QuoteRow, error) {
	const op = "storage.ListQuotes"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id::text, user_id, COALESCE(quote_number, ''), COALESCE(total, 0)::float8,
			      COALESCE(status, ''), created_at
			  FROM quotes
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.QuoteRow
	for rows.Next() {
		var q models.QuoteRow
		if err = rows.Scan(&q.ID, &q.UserID, &q.QuoteNumber, &q.Total, &q.Status, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListCertificates возвращает сертификаты пользователя.
func (s *Storage) ListCertificates(ctx context.Context, userID string) ([]models.CertificateRow, error) {
	const op = "storage.ListCertificates"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id::text, user_id, COALESCE(installation_address, ''), COALESCE(status, ''), created_at
			  FROM certificates
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.CertificateRow
	for rows.Next() {
		var c models.CertificateRow
		if err = rows.Scan(&c.ID, &c.UserID, &c.InstallationAddress, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListStudySessions возвращает учебные сессии пользователя.
func (s *Storage) ListStudySessions(ctx context.Context, userID string) ([]models.StudySessionRow, error) {
	const op = "storage.ListStudySessions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id::text, user_id, COALESCE(topic, ''), COALESCE(duration_minutes, 0), created_at
			  FROM study_sessions
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.StudySessionRow
	for rows.Next() {
		var st models.StudySessionRow
		if err = rows.Scan(&st.ID, &st.UserID, &st.Topic, &st.DurationMinutes, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, st)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListTimeSessions возвращает сессии учёта времени пользователя.
func (s *Storage) ListTimeSessions(ctx context.Context, userID string) ([]models.TimeSessionRow, error) {
	const op = "storage.ListTimeSessions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id::text, user_id, COALESCE(page_path, ''), COALESCE(duration_seconds, 0), started_at
			  FROM time_tracking_sessions
			  WHERE user_id = $1
			  ORDER BY started_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.TimeSessionRow
	for rows.Next() {
		var ts models.TimeSessionRow
		if err = rows.Scan(&ts.ID, &ts.UserID, &ts.PagePath, &ts.DurationSeconds, &ts.StartedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, ts)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListRecentEvents возвращает последние limit отслеживаемых событий пользователя
// (login, page_view, feature_use, session_start). Фильтр по типу применяется до LIMIT.
func (s *Storage) ListRecentEvents(ctx context.Context, userID string, limit int) ([]models.EventRow, error) {
	const op = "storage.ListRecentEvents"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	if limit <= 0 {
		return nil, nil
	}

	query := `SELECT id::text, user_id, COALESCE(event_type, ''), COALESCE(event_name, ''),
			      COALESCE(page_path, ''), created_at
			  FROM user_events
			  WHERE user_id = $1
			    AND event_type IN ('login', 'page_view', 'feature_use', 'session_start')
			  ORDER BY created_at DESC
			  LIMIT $2`
	rows, err := s.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.EventRow
	for rows.Next() {
		var e models.EventRow
		if err = rows.Scan(&e.ID, &e.UserID, &e.EventType, &e.EventName, &e.PagePath, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
