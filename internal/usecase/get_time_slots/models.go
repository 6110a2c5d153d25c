package get_time_slots

import (
	"time"

	"github.com/feldwerk/scheduling-service/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date       time.Time // Дата, на которую запрашиваются слоты
	CategoryID *int64    // Категория услуги (опционально)
	ServiceID  *int64    // Услуга (опционально); влияет на длительность и отбор правил
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time
	DurationMinutes int
	Slots           []domain.TimeSlot
}
