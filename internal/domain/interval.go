package domain

import "time"

// Overlaps сообщает, пересекаются ли два полуоткрытых интервала [start, end).
// Используются строгие неравенства: интервалы, соприкасающиеся границами
// (aEnd == bStart), пересечением не считаются.
// Вызывающая сторона отвечает за то, что все четыре момента корректны.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
