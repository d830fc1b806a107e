// Package hidden описывает локальный оверлей скрытых пользователей.
// Оверлей не является частью канонических данных и влияет только на отображение.
package hidden

import (
	"context"
	"sort"
)

// Set множество идентификаторов скрытых пользователей.
// Нулевое значение Set готово к использованию. nil *Set ведёт себя как пустое
// множество: чтение и Clear безопасны, Add требует ненулевого получателя.
type Set struct {
	ids map[string]struct{}
}

// NewSet создаёт множество из переданных идентификаторов.
func NewSet(ids ...string) *Set {
	s := &Set{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Contains сообщает, скрыт ли пользователь.
func (s *Set) Contains(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

// Add скрывает пользователя. Вызов на nil *Set приводит к панике.
func (s *Set) Add(id string) {
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	s.ids[id] = struct{}{}
}

// Clear возвращает всех скрытых пользователей. На nil *Set ничего не делает.
func (s *Set) Clear() {
	if s == nil {
		return
	}
	s.ids = make(map[string]struct{})
}

// Len количество скрытых пользователей.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// IDs возвращает отсортированный список идентификаторов.
func (s *Set) IDs() []string {
	if s == nil {
		return []string{}
	}
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Store постоянное хранилище оверлея, переживающее перезапуски.
type Store interface {
	// Members загружает текущее множество скрытых пользователей.
	Members(ctx context.Context) (*Set, error)
	// Add скрывает пользователя.
	Add(ctx context.Context, id string) error
	// Clear удаляет все скрытые идентификаторы.
	Clear(ctx context.Context) error
}
