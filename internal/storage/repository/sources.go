package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/trial-tracker/internal/models"
)

// ListActivity возвращает сводки геймификации по всем пользователям.
func (s *Storage) ListActivity(ctx context.Context) ([]models.ActivityRow, error) {
	const op = "storage.ListActivity"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT user_id, COALESCE(points, 0), COALESCE(streak, 0), last_active_date, updated_at
			  FROM user_activity`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.ActivityRow
	for rows.Next() {
		row, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountQuotes возвращает количество цитат по пользователям.
func (s *Storage) CountQuotes(ctx context.Context) ([]models.CountRow, error) {
	return s.countBy(ctx, "storage.CountQuotes", "quotes")
}

// CountCertificates возвращает количество сертификатов по пользователям.
func (s *Storage) CountCertificates(ctx context.Context) ([]models.CountRow, error) {
	return s.countBy(ctx, "storage.CountCertificates", "certificates")
}

// CountStudySessions возвращает количество учебных сессий по пользователям.
func (s *Storage) CountStudySessions(ctx context.Context) ([]models.CountRow, error) {
	return s.countBy(ctx, "storage.CountStudySessions", "study_sessions")
}

// table подставляется только из констант выше.
func (s *Storage) countBy(ctx context.Context, op, table string) ([]models.CountRow, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := fmt.Sprintf(`SELECT user_id, COUNT(*) FROM %s GROUP BY user_id`, table)
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.CountRow
	for rows.Next() {
		var c models.CountRow
		if err = rows.Scan(&c.UserID, &c.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListEventSummaries сворачивает поведенческие события и сессии учёта
// времени в одну строку на пользователя.
func (s *Storage) ListEventSummaries(ctx context.Context) ([]models.EventSummaryRow, error) {
	const op = "storage.ListEventSummaries"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `WITH ev AS (
				SELECT user_id,
					   COUNT(*) FILTER (WHERE event_type = 'login')        AS login_count,
					   COUNT(*) FILTER (WHERE event_type = 'page_view')    AS page_view_count,
					   COUNT(*) FILTER (WHERE event_type = 'feature_use')  AS feature_use_count,
					   COUNT(*) FILTER (WHERE event_type = 'session_start') AS session_count,
					   COUNT(DISTINCT created_at::date)                    AS active_days,
					   COUNT(DISTINCT page_path) FILTER (WHERE event_type = 'page_view') AS unique_pages,
					   MAX(created_at)                                     AS last_activity
				FROM user_events
				GROUP BY user_id
			  ), ts AS (
				SELECT user_id,
					   COALESCE(SUM(duration_seconds), 0) AS total_seconds,
					   MAX(started_at)                    AS last_started
				FROM time_tracking_sessions
				GROUP BY user_id
			  )
			  SELECT COALESCE(ev.user_id, ts.user_id),
					 COALESCE(ev.login_count, 0),
					 COALESCE(ev.page_view_count, 0),
					 COALESCE(ev.feature_use_count, 0),
					 COALESCE(ev.session_count, 0),
					 COALESCE(ev.active_days, 0),
					 COALESCE(ts.total_seconds, 0),
					 COALESCE(ev.unique_pages, 0),
					 GREATEST(ev.last_activity, ts.last_started)
			  FROM ev
			  FULL OUTER JOIN ts ON ts.user_id = ev.user_id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.EventSummaryRow
	for rows.Next() {
		var e models.EventSummaryRow
		var last sql.NullTime
		if err = rows.Scan(&e.UserID, &e.LoginCount, &e.PageViewCount, &e.FeatureUseCount,
			&e.SessionCount, &e.ActiveDays, &e.TotalSecondsTracked, &e.UniquePagesVisited, &last); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		e.LastActivity = nullTime(last)
		result = append(result, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(row scanner) (models.ActivityRow, error) {
	var a models.ActivityRow
	var lastActive, updated sql.NullTime
	if err := row.Scan(&a.UserID, &a.Points, &a.Streak, &lastActive, &updated); err != nil {
		return models.ActivityRow{}, err
	}
	a.LastActiveDate = nullTime(lastActive)
	a.UpdatedAt = nullTime(updated)
	return a, nil
}
