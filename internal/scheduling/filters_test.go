package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feldwerk/scheduling-service/internal/domain"
)

func slotAt(calendarID int64, fromHour, fromMin, toHour, toMin int) domain.TimeSlot {
	return domain.TimeSlot{
		Start:      time.Date(2025, 6, 2, fromHour, fromMin, 0, 0, time.UTC),
		End:        time.Date(2025, 6, 2, toHour, toMin, 0, 0, time.UTC),
		CalendarID: calendarID,
	}
}

func apptAt(calendarID int64, fromHour, toHour int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		CalendarID: calendarID,
		StartDate:  time.Date(2025, 6, 2, fromHour, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 2, toHour, 0, 0, 0, time.UTC),
		Status:     status,
	}
}

func TestWithoutConflicts(t *testing.T) {
	slots := []domain.TimeSlot{
		slotAt(1, 8, 0, 9, 0),
		slotAt(1, 9, 0, 10, 0),
		slotAt(1, 10, 0, 11, 0),
	}

	appointments := []*domain.Appointment{
		apptAt(1, 9, 10, domain.StatusConfirmed),
	}

	available := WithoutConflicts(slots, appointments)
	require.Len(t, available, 2)

	// Выжившие слоты не пересекаются с подтверждённой записью
	for _, slot := range available {
		assert.True(t, !slot.Start.Before(appointments[0].EndDate) || !slot.End.After(appointments[0].StartDate))
	}
}

func TestWithoutConflictsIgnoresOtherStatusesAndCalendars(t *testing.T) {
	slots := []domain.TimeSlot{slotAt(1, 9, 0, 10, 0)}

	// Отменённая запись того же календаря не блокирует
	available := WithoutConflicts(slots, []*domain.Appointment{apptAt(1, 9, 10, domain.StatusCancelled)})
	assert.Len(t, available, 1)

	// Pending не блокирует
	available = WithoutConflicts(slots, []*domain.Appointment{apptAt(1, 9, 10, domain.StatusPending)})
	assert.Len(t, available, 1)

	// Подтверждённая запись другого календаря не блокирует
	available = WithoutConflicts(slots, []*domain.Appointment{apptAt(2, 9, 10, domain.StatusConfirmed)})
	assert.Len(t, available, 1)
}

func TestWithoutConflictsTouchingEndpointsNotOverlap(t *testing.T) {
	slots := []domain.TimeSlot{
		slotAt(1, 8, 0, 9, 0),  // граничит с началом записи
		slotAt(1, 10, 0, 11, 0), // граничит с концом записи
	}

	available := WithoutConflicts(slots, []*domain.Appointment{apptAt(1, 9, 10, domain.StatusConfirmed)})
	assert.Len(t, available, 2)
}

func TestWithoutPast(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	slots := []domain.TimeSlot{
		slotAt(1, 9, 50, 10, 50), // начался 10 минут назад - отбрасывается
		slotAt(1, 9, 58, 10, 58), // начался 2 минуты назад - в пределах допуска
		slotAt(1, 10, 30, 11, 30), // будущий
	}

	future := WithoutPast(slots, now)
	require.Len(t, future, 2)
	assert.Equal(t, slots[1].Start, future[0].Start)
	assert.Equal(t, slots[2].Start, future[1].Start)
}

func TestWithoutPastToleranceBoundary(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	// Ровно 5 минут назад - ещё удерживается
	slots := []domain.TimeSlot{slotAt(1, 9, 55, 10, 55)}
	assert.Len(t, WithoutPast(slots, now), 1)

	// 5 минут и секунда - уже нет
	slot := slotAt(1, 9, 55, 10, 55)
	slot.Start = slot.Start.Add(-time.Second)
	assert.Empty(t, WithoutPast([]domain.TimeSlot{slot}, now))
}
