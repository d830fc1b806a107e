package models

import "time"

// ActionType тип элемента ленты активности.
type ActionType string

const (
	ActionQuote       ActionType = "quote"
	ActionCertificate ActionType = "certificate"
	ActionStudy       ActionType = "study"
	ActionTimeTrack   ActionType = "time_track"
	ActionLogin       ActionType = "login"
	ActionPoints      ActionType = "points"
	ActionProfile     ActionType = "profile"
	ActionStreak      ActionType = "streak"
	ActionPageView    ActionType = "page_view"
	ActionSession     ActionType = "session"
	ActionFeature     ActionType = "feature"
)

// IsSynthetic сообщает, что элемент выведен из агрегированного счётчика,
// а не из события с собственной временной меткой.
func (a ActionType) IsSynthetic() bool {
	return a == ActionPoints || a == ActionStreak
}

// ActivityItem нормализованный элемент ленты активности.
type ActivityItem struct {
	ID         string     `json:"id"`
	ActionType ActionType `json:"action_type"`
	Detail     string     `json:"detail"`
	ExtraInfo  string     `json:"extra_info,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	Synthetic  bool       `json:"synthetic"`
}

// ScoreBreakdown раскладка engagement_score по составляющим.
// Total всегда равен сумме всех составляющих.
type ScoreBreakdown struct {
	BasePoints       int `json:"base_points"`
	StreakBonus      int `json:"streak_bonus"`
	StudyBonus       int `json:"study_bonus"`
	QuoteBonus       int `json:"quote_bonus"`
	CertificateBonus int `json:"certificate_bonus"`
	TimeBonus        int `json:"time_bonus"`
	PageViewBonus    int `json:"page_view_bonus"`
	LoginBonus       int `json:"login_bonus"`
	FeatureBonus     int `json:"feature_bonus"`
	Total            int `json:"total"`
}
