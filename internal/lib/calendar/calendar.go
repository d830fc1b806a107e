// Package calendar содержит чистые функции календарной арифметики:
// границы дня, сдвиг на дни и разницу в целых днях.
// Текущее время никогда не берётся внутри пакета, его передаёт вызывающий код.
package calendar

import "time"

// DateLayout формат ключа даты без времени.
const DateLayout = "2006-01-02"

// StartOfDay возвращает начало суток для t в его собственной временной зоне.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays сдвигает t на n календарных дней, сохраняя время суток.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DayDiff возвращает количество целых дней между StartOfDay(a) и StartOfDay(b).
// Результат положительный, если a позже b.
//
// Считается по гражданским датам, поэтому переход на летнее время
// не даёт дробных суток.
func DayDiff(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(da.Sub(db).Hours() / 24)
}

// DateKey возвращает ключ даты в формате 2006-01-02.
// Лексикографический порядок ключей совпадает с хронологическим.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
