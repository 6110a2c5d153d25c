package domain

import "time"

// TimeSlot represents a bookable time window derived from a schedule rule
type TimeSlot struct {
	Start        time.Time
	End          time.Time
	CalendarID   int64
	EmployeeName string
}

// Duration returns the slot length
func (s *TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// ScoredSlot слот с оценкой близости к существующим записям календаря.
// DistanceKm = nil означает, что оценить расстояние не удалось
// (координаты клиента или ни одной существующей записи не разрешились).
type ScoredSlot struct {
	TimeSlot
	DistanceKm *float64
	IsOptimal  bool
}
