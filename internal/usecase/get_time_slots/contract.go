package get_time_slots

import (
	"context"
	"time"

	"github.com/feldwerk/scheduling-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория правил рабочего времени
type ScheduleRepository interface {
	// GetByDate получает правила активных календарей, действующие в дату
	GetByDate(ctx context.Context, date time.Time) ([]domain.CalendarRule, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByRange получает записи, начинающиеся в интервале [from, to]
	GetByRange(ctx context.Context, calendarID *int64, from, to time.Time) ([]*domain.Appointment, error)
}

// CatalogClient интерфейс клиента каталога услуг
type CatalogClient interface {
	GetServiceDurationWithGracefulDegradation(ctx context.Context, categoryID, serviceID int64) int
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
