// Package view фильтрует и группирует агрегированных пользователей
// для админского представления.
//
// Группы упорядочены по дате окончания пробного периода по возрастанию,
// внутри группы пользователи упорядочены по engagement_score по убыванию.
package view

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/magabrotheeeer/trial-tracker/internal/analytics/engagement"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/calendar"
	"github.com/magabrotheeeer/trial-tracker/internal/models"
)

// All значение фильтра, отключающее ограничение.
const All = "all"

// ErrInvalidFilter возвращается при неизвестном значении фильтра.
var ErrInvalidFilter = errors.New("invalid filter")

// HiddenSet множество скрытых пользователей, исключаемых из выдачи.
type HiddenSet interface {
	Contains(id string) bool
}

// Filter критерии отбора. Пустые значения эквивалентны All.
type Filter struct {
	// Status принимает all, subscribed или конкретный статус пробного периода.
	// subscribed переключает базовую выборку на пользователей с подпиской,
	// любое другое значение работает только с пользователями без подписки.
	Status string `json:"status"`
	// Role принимает all или конкретную роль.
	Role string `json:"role"`
	// Engagement принимает all, hot, warm или cold.
	Engagement string `json:"engagement"`
	// Search задаёт подстроку без учёта регистра по имени и username.
	Search string `json:"search"`
}

// Normalize заменяет пустые значения на All и убирает пробелы вокруг поиска.
func (f Filter) Normalize() Filter {
	f.Status = orAll(strings.ToLower(strings.TrimSpace(f.Status)))
	f.Role = orAll(strings.ToLower(strings.TrimSpace(f.Role)))
	f.Engagement = orAll(strings.ToLower(strings.TrimSpace(f.Engagement)))
	f.Search = strings.TrimSpace(f.Search)
	return f
}

// Validate проверяет значения фильтра.
func (f Filter) Validate() error {
	f = f.Normalize()
	switch models.TrialStatus(f.Status) {
	case All, models.StatusActive, models.StatusEndingToday, models.StatusEndingTomorrow,
		models.StatusExpired, models.StatusSubscribed:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, f.Status)
	}
	switch models.Role(f.Role) {
	case All, models.RoleApprentice, models.RoleElectrician, models.RoleEmployer, models.RoleNone:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidFilter, f.Role)
	}
	switch models.Tier(f.Engagement) {
	case All, models.TierHot, models.TierWarm, models.TierCold:
	default:
		return fmt.Errorf("%w: unknown engagement %q", ErrInvalidFilter, f.Engagement)
	}
	return nil
}

// Group пользователи с одной датой окончания пробного периода.
type Group struct {
	Date  string             `json:"date"`
	Users []models.TrialUser `json:"users"`
}

// Result сгруппированная выдача.
type Result struct {
	Groups []Group `json:"groups"`
	Total  int     `json:"total"`
}

// Engine применяет фильтры и группировку.
type Engine struct {
	thresholds engagement.Thresholds
}

// NewEngine создаёт Engine с порогами уровней вовлечённости.
func NewEngine(thresholds engagement.Thresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// Apply отбирает пользователей по фильтру, исключает скрытых и группирует
// по дате окончания пробного периода. Входной срез не изменяется.
func (e *Engine) Apply(users []models.TrialUser, f Filter, hiddenSet HiddenSet) Result {
	f = f.Normalize()
	search := strings.ToLower(f.Search)

	groups := make(map[string][]models.TrialUser)
	total := 0
	for _, u := range users {
		if !e.match(u, f, search, hiddenSet) {
			continue
		}
		key := calendar.DateKey(u.TrialEnd)
		groups[key] = append(groups[key], u)
		total++
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := Result{Groups: make([]Group, 0, len(keys)), Total: total}
	for _, k := range keys {
		members := groups[k]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].EngagementScore > members[j].EngagementScore
		})
		res.Groups = append(res.Groups, Group{Date: k, Users: members})
	}
	return res
}

func (e *Engine) match(u models.TrialUser, f Filter, search string, hiddenSet HiddenSet) bool {
	if hiddenSet != nil && hiddenSet.Contains(u.ID) {
		return false
	}

	if models.TrialStatus(f.Status) == models.StatusSubscribed {
		if !u.Subscribed {
			return false
		}
	} else {
		if u.Subscribed {
			return false
		}
		if f.Status != All && string(u.TrialStatus) != f.Status {
			return false
		}
	}

	if f.Role != All && string(u.Role) != f.Role {
		return false
	}
	if f.Engagement != All && string(e.thresholds.Tier(u.EngagementScore)) != f.Engagement {
		return false
	}
	if search != "" &&
		!strings.Contains(strings.ToLower(u.FullName), search) &&
		!strings.Contains(strings.ToLower(u.Username), search) {
		return false
	}
	return true
}

func orAll(s string) string {
	if s == "" {
		return All
	}
	return s
}
