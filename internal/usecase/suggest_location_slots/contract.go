package suggest_location_slots

import (
	"context"
	"time"

	"github.com/feldwerk/scheduling-service/internal/domain"
	"github.com/feldwerk/scheduling-service/pkg/geospatial"
)

// ScheduleRepository интерфейс репозитория правил рабочего времени
type ScheduleRepository interface {
	// GetByDate получает правила активных календарей, действующие в дату
	GetByDate(ctx context.Context, date time.Time) ([]domain.CalendarRule, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByRange получает записи календаря в интервале [from, to] с контактами
	GetByRange(ctx context.Context, calendarID *int64, from, to time.Time) ([]*domain.Appointment, error)
}

// Geocoder интерфейс клиента геокодирования
type Geocoder interface {
	Resolve(ctx context.Context, address string) (*geospatial.Coordinate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
