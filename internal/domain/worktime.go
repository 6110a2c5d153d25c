package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WorkTime время в пределах суток (без даты и зоны)
type WorkTime struct {
	Hour   int
	Minute int
}

// ParseWorkTime разбирает строку времени правила в 24-часовой формат.
// Поддерживаются записи "08:00", "8:30" и 12-часовые с суффиксом:
// "8:00 am", "4:30 pm". Правила преобразования: 12pm -> 12, 12am -> 0,
// остальные pm получают +12.
func ParseWorkTime(s string) (WorkTime, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) == 0 {
		return WorkTime{}, fmt.Errorf("empty time string")
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return WorkTime{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return WorkTime{}, fmt.Errorf("invalid hour in %q: %v", s, err)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return WorkTime{}, fmt.Errorf("invalid minute in %q: %v", s, err)
	}

	if len(parts) > 1 {
		switch strings.ToLower(parts[1]) {
		case "pm":
			if hour != 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		default:
			return WorkTime{}, fmt.Errorf("invalid suffix in %q: expected am/pm", s)
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return WorkTime{}, fmt.Errorf("time %q out of range", s)
	}

	return WorkTime{Hour: hour, Minute: minute}, nil
}

// MinutesOfDay возвращает количество минут с начала суток
func (t WorkTime) MinutesOfDay() int {
	return t.Hour*60 + t.Minute
}

// On возвращает абсолютный момент: время t в дату date в SchedulingLocation
func (t WorkTime) On(date time.Time) time.Time {
	d := DateOnly(date)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, 0, 0, SchedulingLocation)
}

// Before проверяет, что t строго раньше other
func (t WorkTime) Before(other WorkTime) bool {
	return t.MinutesOfDay() < other.MinutesOfDay()
}
