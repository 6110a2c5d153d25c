// Package scheduling содержит чистое вычислительное ядро подбора слотов:
// отбор правил рабочего времени, генерацию временных окон, фильтрацию
// конфликтов и прошедшего времени, оценку близости по расстоянию.
// Пакет не имеет состояния и не обращается к внешним системам -
// все данные передаются вызывающей стороной.
package scheduling

import (
	"time"

	"github.com/feldwerk/scheduling-service/internal/domain"
)

// ApplicableRules отбирает правила, действующие в указанную дату.
// Если serviceID задан, исключаются правила, чьё ограничение по услугам
// не содержит эту услугу (пустое ограничение пропускает любую услугу).
func ApplicableRules(rules []domain.CalendarRule, date time.Time, serviceID *int64) []domain.CalendarRule {
	result := make([]domain.CalendarRule, 0, len(rules))

	for _, rule := range rules {
		if !rule.AppliesTo(date) {
			continue
		}
		if serviceID != nil && !rule.AllowsService(*serviceID) {
			continue
		}
		result = append(result, rule)
	}

	return result
}

// RulesForCalendar оставляет только правила указанного календаря
func RulesForCalendar(rules []domain.CalendarRule, calendarID int64) []domain.CalendarRule {
	result := make([]domain.CalendarRule, 0, len(rules))
	for _, rule := range rules {
		if rule.CalendarID == calendarID {
			result = append(result, rule)
		}
	}
	return result
}
