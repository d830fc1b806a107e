// Package trial классифицирует состояние пробного периода пользователя
// по дате регистрации, признаку подписки и текущему времени.
package trial

import (
	"time"

	"github.com/magabrotheeeer/trial-tracker/internal/lib/calendar"
	"github.com/magabrotheeeer/trial-tracker/internal/models"
)

// DefaultWindowDays длительность пробного периода по умолчанию.
const DefaultWindowDays = 7

// Result результат классификации.
type Result struct {
	Status models.TrialStatus
	// DaysRemaining количество оставшихся дней для отображения, не меньше нуля.
	DaysRemaining int
	// RawDaysRemaining значение до ограничения снизу, используется для классификации.
	RawDaysRemaining int
	TrialEnd         time.Time
}

// Classifier определяет статус пробного периода для заданной длины окна.
type Classifier struct {
	windowDays int
}

// NewClassifier создаёт классификатор. Неположительное окно заменяется значением по умолчанию.
func NewClassifier(windowDays int) Classifier {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return Classifier{windowDays: windowDays}
}

// WindowDays возвращает длину пробного периода в днях.
func (c Classifier) WindowDays() int {
	return c.windowDays
}

// TrialEnd возвращает дату окончания пробного периода в зоне now.
func (c Classifier) TrialEnd(createdAt, now time.Time) time.Time {
	return calendar.AddDays(createdAt.In(now.Location()), c.windowDays)
}

// Classify вычисляет статус пробного периода.
// createdAt должен быть корректным моментом времени, это обязанность поставщика данных.
func (c Classifier) Classify(createdAt time.Time, subscribed bool, now time.Time) Result {
	trialEnd := c.TrialEnd(createdAt, now)
	raw := calendar.DayDiff(calendar.StartOfDay(trialEnd), calendar.StartOfDay(now))

	res := Result{
		Status:           statusFor(raw, subscribed),
		DaysRemaining:    max(0, raw),
		RawDaysRemaining: raw,
		TrialEnd:         trialEnd,
	}
	return res
}

func statusFor(daysRemaining int, subscribed bool) models.TrialStatus {
	switch {
	case subscribed:
		return models.StatusSubscribed
	case daysRemaining < 0:
		return models.StatusExpired
	case daysRemaining == 0:
		return models.StatusEndingToday
	case daysRemaining == 1:
		return models.StatusEndingTomorrow
	default:
		return models.StatusActive
	}
}
