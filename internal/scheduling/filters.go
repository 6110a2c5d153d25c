package scheduling

import (
	"time"

	"github.com/feldwerk/scheduling-service/internal/domain"
)

// WithoutConflicts убирает окна, пересекающиеся с подтверждённой записью
// того же календаря. Пересечение проверяется по открытым интервалам:
// окно 11:30-12:00 и запись 11:00-11:30 граничат, но не пересекаются.
// Записи в любом статусе, кроме Confirmed, окна не блокируют.
func WithoutConflicts(slots []domain.TimeSlot, appointments []*domain.Appointment) []domain.TimeSlot {
	result := make([]domain.TimeSlot, 0, len(slots))

	for _, slot := range slots {
		blocked := false
		for _, appt := range appointments {
			if appt.Blocks(slot.CalendarID, slot.Start, slot.End) {
				blocked = true
				break
			}
		}
		if !blocked {
			result = append(result, slot)
		}
	}

	return result
}

// WithoutPast убирает окна, начавшиеся раньше now минус допуск
// PastToleranceMinutes. Окно, начавшееся 2 минуты назад, остаётся;
// начавшееся 10 минут назад - отбрасывается.
func WithoutPast(slots []domain.TimeSlot, now time.Time) []domain.TimeSlot {
	minAllowedStart := now.Add(-domain.PastToleranceMinutes * time.Minute)

	result := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if !slot.Start.Before(minAllowedStart) {
			result = append(result, slot)
		}
	}

	return result
}
