package scheduling

import (
	"fmt"
	"time"

	"github.com/feldwerk/scheduling-service/internal/domain"
)

// GenerateSlots генерирует временные окна по одному правилу на указанную дату.
// Окна идут подряд от TimeFrom с шагом durationMinutes; окно попадает в
// результат, только если его конец не выходит за TimeTo (окно, которое
// заканчивается ровно в TimeTo, включается). Вся арифметика выполняется
// в domain.SchedulingLocation.
//
// Граничные случаи: TimeFrom == TimeTo или длительность больше окна
// правила дают пустой результат.
func GenerateSlots(rule domain.CalendarRule, date time.Time, durationMinutes int) ([]domain.TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", durationMinutes)
	}

	from, err := domain.ParseWorkTime(rule.TimeFrom)
	if err != nil {
		return nil, fmt.Errorf("rule id=%d: invalid time_from: %v", rule.ID, err)
	}

	to, err := domain.ParseWorkTime(rule.TimeTo)
	if err != nil {
		return nil, fmt.Errorf("rule id=%d: invalid time_to: %v", rule.ID, err)
	}

	windowEnd := to.On(date)
	step := time.Duration(durationMinutes) * time.Minute

	slots := make([]domain.TimeSlot, 0)
	for current := from.On(date); current.Before(windowEnd); current = current.Add(step) {
		slotEnd := current.Add(step)

		// Частичное окно на границе не выдаётся
		if slotEnd.After(windowEnd) {
			break
		}

		slots = append(slots, domain.TimeSlot{
			Start:        current,
			End:          slotEnd,
			CalendarID:   rule.CalendarID,
			EmployeeName: rule.EmployeeName,
		})
	}

	return slots, nil
}

// GenerateAllSlots генерирует окна по каждому правилу и объединяет результат.
// Правила одного календаря могут давать пересекающиеся окна (базовый график
// плюс исключение) - дедупликация здесь намеренно не выполняется.
func GenerateAllSlots(rules []domain.CalendarRule, date time.Time, durationMinutes int) ([]domain.TimeSlot, error) {
	slots := make([]domain.TimeSlot, 0)

	for _, rule := range rules {
		ruleSlots, err := GenerateSlots(rule, date, durationMinutes)
		if err != nil {
			return nil, err
		}
		slots = append(slots, ruleSlots...)
	}

	return slots, nil
}
