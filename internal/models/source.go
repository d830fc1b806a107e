package models

import "time"

// UserRow строка основного источника пользователей.
type UserRow struct {
	ID         string
	FullName   string
	Username   string
	Role       string
	Subscribed bool
	CreatedAt  time.Time
	Email      string
	LastSignIn *time.Time
}

// ActivityRow сводка геймификации пользователя (1:1).
type ActivityRow struct {
	UserID         string
	Points         int
	Streak         int
	LastActiveDate *time.Time
	UpdatedAt      *time.Time
}

// CountRow количество записей пользователя в источнике-счётчике
// (цитаты, сертификаты, учебные сессии).
type CountRow struct {
	UserID string
	Count  int
}

// EventSummaryRow сводка поведенческих событий пользователя (1:1).
type EventSummaryRow struct {
	UserID              string
	LoginCount          int
	PageViewCount       int
	FeatureUseCount     int
	SessionCount        int
	ActiveDays          int
	TotalSecondsTracked int
	UniquePagesVisited  int
	LastActivity        *time.Time
}

// QuoteRow цитата (коммерческое предложение), созданная пользователем.
type QuoteRow struct {
	ID          string
	UserID      string
	QuoteNumber string
	Total       float64
	Status      string
	CreatedAt   time.Time
}

// CertificateRow сертификат, оформленный пользователем.
type CertificateRow struct {
	ID                  string
	UserID              string
	InstallationAddress string
	Status              string
	CreatedAt           time.Time
}

// StudySessionRow учебная сессия пользователя.
type StudySessionRow struct {
	ID              string
	UserID          string
	Topic           string
	DurationMinutes int
	CreatedAt       time.Time
}

// TimeSessionRow сессия учёта времени в приложении.
type TimeSessionRow struct {
	ID              string
	UserID          string
	PagePath        string
	DurationSeconds int
	StartedAt       time.Time
}

// EventRow сырое поведенческое событие.
type EventRow struct {
	ID        string
	UserID    string
	EventType string
	EventName string
	PagePath  string
	CreatedAt time.Time
}
