// Package models содержит доменные структуры трекера пробных периодов:
// агрегированную запись пользователя, счётчики активности, элементы ленты
// активности, а также строки внешних источников данных.
// Все структуры являются проекциями только для чтения, ядро никогда не изменяет исходные данные.
package models

import "time"

// TrialStatus описывает состояние пробного периода пользователя.
type TrialStatus string

const (
	// StatusActive до конца пробного периода больше одного дня.
	StatusActive TrialStatus = "active"
	// StatusEndingToday пробный период заканчивается сегодня.
	StatusEndingToday TrialStatus = "ending_today"
	// StatusEndingTomorrow пробный период заканчивается завтра.
	StatusEndingTomorrow TrialStatus = "ending_tomorrow"
	// StatusExpired пробный период закончился, подписки нет.
	StatusExpired TrialStatus = "expired"
	// StatusSubscribed пользователь оформил подписку.
	StatusSubscribed TrialStatus = "subscribed"
)

// Role роль пользователя в продукте.
type Role string

const (
	RoleApprentice  Role = "apprentice"
	RoleElectrician Role = "electrician"
	RoleEmployer    Role = "employer"
	RoleNone        Role = "none"
)

// ParseRole приводит произвольную строку из источника к известной роли.
// Пустые и неизвестные значения превращаются в RoleNone.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleApprentice, RoleElectrician, RoleEmployer:
		return Role(s)
	default:
		return RoleNone
	}
}

// Tier уровень вовлечённости, вычисляемый по порогам engagement_score.
type Tier string

const (
	TierHot  Tier = "hot"
	TierWarm Tier = "warm"
	TierCold Tier = "cold"
)

// Counters набор сырых счётчиков активности пользователя,
// собранный из всех вторичных источников.
type Counters struct {
	Points              int        `json:"points"`
	Streak              int        `json:"streak"`
	StudySessions       int        `json:"study_sessions"`
	QuotesCount         int        `json:"quotes_count"`
	CertificateCount    int        `json:"certificate_count"`
	LoginCount          int        `json:"login_count"`
	UniquePagesVisited  int        `json:"unique_pages_visited"`
	FeatureUseCount     int        `json:"feature_use_count"`
	TotalSecondsTracked int        `json:"total_seconds_tracked"`
	ActiveDays          int        `json:"active_days"`
	LastActivity        *time.Time `json:"last_activity,omitempty"`
}

// TrialUser объединённая запись пользователя для админского представления.
type TrialUser struct {
	ID              string      `json:"id"`
	FullName        string      `json:"full_name"`
	Username        string      `json:"username"`
	Email           string      `json:"email"`
	Role            Role        `json:"role"`
	Subscribed      bool        `json:"subscribed"`
	CreatedAt       time.Time   `json:"created_at"`
	LastSignIn      *time.Time  `json:"last_sign_in,omitempty"`
	TrialEnd        time.Time   `json:"trial_end"`
	TrialStatus     TrialStatus `json:"trial_status"`
	DaysRemaining   int         `json:"days_remaining"`
	EngagementScore int         `json:"engagement_score"`
	Counters        Counters    `json:"counters"`
}
