// Package month содержит вычисление границ календарного месяца
// для агрегации журнала по учётной дате.
package month

import "time"

// Bounds возвращает полуинтервал [from, to) для заданного календарного
// месяца: первое число месяца и первое число следующего, в UTC.
func Bounds(year int, m time.Month) (from, to time.Time) {
	from = time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 1, 0)
	return from, to
}

// BoundsAt возвращает границы месяца, в который попадает момент t.
func BoundsAt(t time.Time) (from, to time.Time) {
	return Bounds(t.UTC().Year(), t.UTC().Month())
}
