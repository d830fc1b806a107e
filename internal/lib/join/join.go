// Package join содержит обобщённые помощники для объединения нескольких
// коллекций, связанных по ключу, в одну запись.
package join

// Index строит индекс коллекции по ключу, сворачивая строки с одинаковым
// ключом функцией fold. Для нового ключа свёртка начинается с нулевого значения V.
func Index[R any, V any](rows []R, key func(R) string, fold func(acc V, row R) V) map[string]V {
	idx := make(map[string]V, len(rows))
	for _, row := range rows {
		k := key(row)
		idx[k] = fold(idx[k], row)
	}
	return idx
}

// Sum индексирует коллекцию-счётчик: значения строк с одинаковым ключом складываются.
func Sum[R any](rows []R, key func(R) string, value func(R) int) map[string]int {
	return Index(rows, key, func(acc int, row R) int {
		return acc + value(row)
	})
}

// Latest индексирует коллекцию вида 1:1: при повторе ключа побеждает последняя строка.
func Latest[R any](rows []R, key func(R) string) map[string]R {
	return Index(rows, key, func(_ R, row R) R {
		return row
	})
}

// Get возвращает значение по ключу или def, если ключа нет.
func Get[V any](idx map[string]V, key string, def V) V {
	if v, ok := idx[key]; ok {
		return v
	}
	return def
}
