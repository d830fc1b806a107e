package models

import "time"

// ReminderKind вид письма, отправляемого пользователю пробного периода.
type ReminderKind string

const (
	// KindReminder напоминание об окончании пробного периода.
	KindReminder ReminderKind = "reminder"
	// KindOffer специальное предложение на оформление подписки.
	KindOffer ReminderKind = "offer"
)

// Valid проверяет, что вид письма известен.
func (k ReminderKind) Valid() bool {
	return k == KindReminder || k == KindOffer
}

// ReminderMessage сообщение, публикуемое в очередь уведомлений.
type ReminderMessage struct {
	MessageID     string       `json:"message_id"`
	BatchID       string       `json:"batch_id"`
	Kind          ReminderKind `json:"kind"`
	UserID        string       `json:"user_id"`
	Email         string       `json:"email"`
	FullName      string       `json:"full_name"`
	Username      string       `json:"username"`
	TrialStatus   TrialStatus  `json:"trial_status"`
	TrialEnd      time.Time    `json:"trial_end"`
	DaysRemaining int          `json:"days_remaining"`
}
