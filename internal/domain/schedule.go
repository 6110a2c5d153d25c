package domain

import "time"

// RuleType represents the kind of a working-hours rule
type RuleType string

const (
	// RuleTypeWeekly повторяется каждую неделю в указанный день недели
	RuleTypeWeekly RuleType = "weekly"
	// RuleTypeCertain действует в фиксированном диапазоне дат (включительно)
	RuleTypeCertain RuleType = "certain"
)

// ScheduleRule represents a working-hours rule for a calendar (technician)
type ScheduleRule struct {
	ID         int64
	CalendarID int64
	Type       RuleType

	// Weekday английское название дня недели ("Monday" и т.д.), только для weekly
	Weekday *string

	// DateFrom/DateTo границы диапазона (включительно), только для certain
	DateFrom *time.Time
	DateTo   *time.Time

	// TimeFrom/TimeTo время работы в виде строки ("08:00" или "8:00 am")
	TimeFrom string
	TimeTo   string

	// RestrictedToServiceIDs ограничение по услугам; пустой список = без ограничений
	RestrictedToServiceIDs []int64

	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CalendarRule правило вместе с данными календаря (результат JOIN с calendars)
type CalendarRule struct {
	ScheduleRule
	EmployeeName string
}

// AppliesTo проверяет, действует ли правило в указанную дату.
// Weekly-правило действует, если день недели даты совпадает с Weekday.
// Certain-правило действует, если дата попадает в [DateFrom, DateTo]
// (сравнение только по дате, время суток игнорируется).
// Все даты интерпретируются в SchedulingLocation.
func (r *ScheduleRule) AppliesTo(date time.Time) bool {
	if !r.Active {
		return false
	}

	switch r.Type {
	case RuleTypeWeekly:
		if r.Weekday == nil {
			return false
		}
		return date.In(SchedulingLocation).Weekday().String() == *r.Weekday

	case RuleTypeCertain:
		if r.DateFrom == nil || r.DateTo == nil {
			return false
		}
		d := DateOnly(date)
		return !d.Before(DateOnly(*r.DateFrom)) && !d.After(DateOnly(*r.DateTo))

	default:
		return false
	}
}

// AllowsService проверяет, разрешена ли услуга этим правилом.
// Пустой список ограничений означает "любая услуга".
func (r *ScheduleRule) AllowsService(serviceID int64) bool {
	if len(r.RestrictedToServiceIDs) == 0 {
		return true
	}
	for _, id := range r.RestrictedToServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// DateOnly обнуляет время суток, оставляя только дату в SchedulingLocation
func DateOnly(t time.Time) time.Time {
	t = t.In(SchedulingLocation)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, SchedulingLocation)
}
