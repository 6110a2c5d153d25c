package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusPending   AppointmentStatus = "Pending"
	StatusCancelled AppointmentStatus = "Cancelled"
	StatusCompleted AppointmentStatus = "Completed"
)

// Appointment represents a booked service appointment
type Appointment struct {
	ID         int64
	CalendarID int64
	CategoryID int64
	ServiceID  int64
	StartDate  time.Time
	EndDate    time.Time
	Status     AppointmentStatus

	// Contact данные клиента; nil, если выборка была без JOIN на contacts
	Contact *Contact

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Blocks проверяет, блокирует ли запись временной интервал [start, end).
// Блокируют только подтверждённые записи того же календаря.
// Пересечение считается по открытым интервалам: соприкосновение границ
// пересечением не является.
func (a *Appointment) Blocks(calendarID int64, start, end time.Time) bool {
	if a.CalendarID != calendarID {
		return false
	}
	if a.Status != StatusConfirmed {
		return false
	}
	return start.Before(a.EndDate) && end.After(a.StartDate)
}

// Contact represents a customer record used for appointment geolocation
type Contact struct {
	ID       int64
	Address  *string
	ZipCode  *string
	Location *string

	// District номер района Вены (1-23), используется как запасной
	// источник координат
	District *int

	// Lat/Lng сохранённые координаты; приоритетный источник
	Lat *float64
	Lng *float64
}

// HasStoredCoordinates проверяет, заданы ли у контакта обе координаты
func (c *Contact) HasStoredCoordinates() bool {
	return c.Lat != nil && c.Lng != nil
}
