package suggest_location_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feldwerk/scheduling-service/internal/domain"
	"github.com/feldwerk/scheduling-service/pkg/geospatial"
	"github.com/feldwerk/scheduling-service/pkg/ptr"
)

var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

type fakeScheduleRepo struct {
	rules []domain.CalendarRule
	err   error
}

func (f *fakeScheduleRepo) GetByDate(_ context.Context, _ time.Time) ([]domain.CalendarRule, error) {
	return f.rules, f.err
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error

	gotCalendarID *int64
}

func (f *fakeAppointmentRepo) GetByRange(_ context.Context, calendarID *int64, _, _ time.Time) ([]*domain.Appointment, error) {
	f.gotCalendarID = calendarID
	return f.appointments, f.err
}

type fakeGeocoder struct {
	coord *geospatial.Coordinate
	err   error

	resolved []string
}

func (f *fakeGeocoder) Resolve(_ context.Context, address string) (*geospatial.Coordinate, error) {
	f.resolved = append(f.resolved, address)
	return f.coord, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mondayRule(calendarID int64, timeFrom, timeTo string) domain.CalendarRule {
	weekday := "Monday"
	return domain.CalendarRule{
		ScheduleRule: domain.ScheduleRule{
			ID:         calendarID,
			CalendarID: calendarID,
			Type:       domain.RuleTypeWeekly,
			Weekday:    &weekday,
			TimeFrom:   timeFrom,
			TimeTo:     timeTo,
			Active:     true,
		},
		EmployeeName: "Anna",
	}
}

func apptWithContact(calendarID int64, contact *domain.Contact) *domain.Appointment {
	return &domain.Appointment{
		CalendarID: calendarID,
		StartDate:  time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		Status:     domain.StatusConfirmed,
		Contact:    contact,
	}
}

func TestExecuteSameDistrictOptimal(t *testing.T) {
	schedules := &fakeScheduleRepo{rules: []domain.CalendarRule{mondayRule(1, "08:00", "10:00")}}
	appointments := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		apptWithContact(1, &domain.Contact{District: ptr.Ptr(1)}),
	}}

	uc := NewUseCase(schedules, appointments, &fakeGeocoder{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       monday,
		CalendarID: 1,
		Customer:   Customer{District: ptr.Ptr(1)},
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)

	for _, slot := range resp.Slots {
		require.NotNil(t, slot.DistanceKm)
		assert.Equal(t, 0.0, *slot.DistanceKm)
		assert.True(t, slot.IsOptimal)
	}

	// Записи запрашивались только для нужного календаря
	require.NotNil(t, appointments.gotCalendarID)
	assert.Equal(t, int64(1), *appointments.gotCalendarID)
}

func TestExecuteUnresolvedCustomer(t *testing.T) {
	schedules := &fakeScheduleRepo{rules: []domain.CalendarRule{mondayRule(1, "08:00", "10:00")}}
	appointments := &fakeAppointmentRepo{}
	geocoder := &fakeGeocoder{}

	uc := NewUseCase(schedules, appointments, geocoder, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, CalendarID: 1})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)

	for _, slot := range resp.Slots {
		assert.Nil(t, slot.DistanceKm)
		assert.False(t, slot.IsOptimal)
	}

	// Без адреса геокодер не вызывается, записи не запрашиваются
	assert.Empty(t, geocoder.resolved)
	assert.Nil(t, appointments.gotCalendarID)
}

func TestExecuteStoredCoordinatesSkipGeocoding(t *testing.T) {
	schedules := &fakeScheduleRepo{rules: []domain.CalendarRule{mondayRule(1, "08:00", "09:00")}}
	appointments := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		apptWithContact(1, &domain.Contact{Lat: ptr.Ptr(48.2085), Lng: ptr.Ptr(16.3731)}),
	}}
	// Геокодер сломан - сохранённые координаты должны его обойти
	geocoder := &fakeGeocoder{err: errors.New("quota exceeded")}

	uc := NewUseCase(schedules, appointments, geocoder, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       monday,
		CalendarID: 1,
		Customer:   Customer{Lat: ptr.Ptr(48.2085), Lng: ptr.Ptr(16.3731)},
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)

	require.NotNil(t, resp.Slots[0].DistanceKm)
	assert.Equal(t, 0.0, *resp.Slots[0].DistanceKm)
	assert.Empty(t, geocoder.resolved)
}

func TestExecuteGeocodedAddress(t *testing.T) {
	schedules := &fakeScheduleRepo{rules: []domain.CalendarRule{mondayRule(1, "08:00", "09:00")}}
	appointments := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		apptWithContact(1, &domain.Contact{District: ptr.Ptr(8)}), // Josefstadt
	}}
	geocoder := &fakeGeocoder{coord: &geospatial.Coordinate{Lat: 48.2100, Lng: 16.3500}}

	uc := NewUseCase(schedules, appointments, geocoder, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       monday,
		CalendarID: 1,
		Customer:   Customer{Address: ptr.Ptr("Josefstädter Straße 1, Wien")},
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)

	require.NotNil(t, resp.Slots[0].DistanceKm)
	assert.True(t, resp.Slots[0].IsOptimal)
	assert.Equal(t, []string{"Josefstädter Straße 1, Wien"}, geocoder.resolved)
}

func TestExecuteGeocoderFailureFallsBackToDistrict(t *testing.T) {
	schedules := &fakeScheduleRepo{rules: []domain.CalendarRule{mondayRule(1, "08:00", "09:00")}}
	appointments := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		apptWithContact(1, &domain.Contact{District: ptr.Ptr(1)}),
	}}
	geocoder := &fakeGeocoder{err: errors.New("service unavailable")}

	uc := NewUseCase(schedules, appointments, geocoder, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       monday,
		CalendarID: 1,
		Customer: Customer{
			Address:  ptr.Ptr("Stephansplatz 1, Wien"),
			District: ptr.Ptr(1),
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)

	// Ошибка геокодирования не фатальна - координаты взяты из центра района
	require.NotNil(t, resp.Slots[0].DistanceKm)
	assert.Equal(t, 0.0, *resp.Slots[0].DistanceKm)
	assert.Len(t, geocoder.resolved, 1)
}

func TestExecuteUnresolvableContactsSkipped(t *testing.T) {
	schedules := &fakeScheduleRepo{rules: []domain.CalendarRule{mondayRule(1, "08:00", "09:00")}}
	appointments := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		apptWithContact(1, nil),
		apptWithContact(1, &domain.Contact{}),
	}}

	uc := NewUseCase(schedules, appointments, &fakeGeocoder{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       monday,
		CalendarID: 1,
		Customer:   Customer{District: ptr.Ptr(1)},
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)

	// Опорных точек не осталось - расстояние не вычисляется
	assert.Nil(t, resp.Slots[0].DistanceKm)
	assert.False(t, resp.Slots[0].IsOptimal)
}

func TestExecuteOtherCalendarRulesExcluded(t *testing.T) {
	schedules := &fakeScheduleRepo{rules: []domain.CalendarRule{mondayRule(2, "08:00", "17:00")}}

	uc := NewUseCase(schedules, &fakeAppointmentRepo{}, &fakeGeocoder{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, CalendarID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, &fakeAppointmentRepo{}, &fakeGeocoder{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CalendarID: 1})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Date:       monday,
		CalendarID: 1,
		Customer:   Customer{District: ptr.Ptr(24)},
	})
	assert.ErrorIs(t, err, ErrInvalidDistrict)
}

func TestExecuteRepositoryErrors(t *testing.T) {
	repoErr := errors.New("connection refused")

	uc := NewUseCase(&fakeScheduleRepo{err: repoErr}, &fakeAppointmentRepo{}, &fakeGeocoder{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{Date: monday, CalendarID: 1})
	assert.ErrorIs(t, err, ErrInternal)

	schedules := &fakeScheduleRepo{rules: []domain.CalendarRule{mondayRule(1, "08:00", "09:00")}}
	uc = NewUseCase(schedules, &fakeAppointmentRepo{err: repoErr}, &fakeGeocoder{}, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{
		Date:       monday,
		CalendarID: 1,
		Customer:   Customer{District: ptr.Ptr(1)},
	})
	assert.ErrorIs(t, err, ErrInternal)
}
