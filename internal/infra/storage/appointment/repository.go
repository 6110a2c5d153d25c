package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/feldwerk/scheduling-service/internal/domain"
	"github.com/feldwerk/scheduling-service/pkg/psqlbuilder"
)

// Repository репозиторий записей на обслуживание
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByRange получает записи, начинающиеся в интервале [from, to],
// вместе с данными контакта (адрес, район, координаты) для оценки
// расстояния. Если calendarID задан, выборка ограничивается одним
// календарём. Статусы не фильтруются - это делает вызывающая сторона
// в зависимости от цели (конфликты или оценка близости).
func (r *Repository) GetByRange(ctx context.Context, calendarID *int64, from, to time.Time) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(
		"a.id",
		"a.calendar_id",
		"a.category_id",
		"a.service_id",
		"a.start_date",
		"a.end_date",
		"a.appointment_status",
		"a.created_at",
		"a.updated_at",
		"c.id",
		"c.address",
		"c.zip_code",
		"c.location",
		"c.district",
		"c.lat",
		"c.lng",
	).
		From("appointments a").
		LeftJoin("contacts c ON a.contact_id = c.id").
		Where(squirrel.GtOrEq{"a.start_date": from}).
		Where(squirrel.LtOrEq{"a.start_date": to}).
		OrderBy("a.start_date ASC")

	if calendarID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.calendar_id": *calendarID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime
		var contactID sql.NullInt64
		var address, zipCode, location sql.NullString
		var district sql.NullInt64
		var lat, lng sql.NullFloat64

		err := rows.Scan(
			&appt.ID,
			&appt.CalendarID,
			&appt.CategoryID,
			&appt.ServiceID,
			&appt.StartDate,
			&appt.EndDate,
			&appt.Status,
			&createdAt,
			&updatedAt,
			&contactID,
			&address,
			&zipCode,
			&location,
			&district,
			&lat,
			&lng,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		if contactID.Valid {
			contact := &domain.Contact{ID: contactID.Int64}
			if address.Valid {
				contact.Address = &address.String
			}
			if zipCode.Valid {
				contact.ZipCode = &zipCode.String
			}
			if location.Valid {
				contact.Location = &location.String
			}
			if district.Valid {
				d := int(district.Int64)
				contact.District = &d
			}
			if lat.Valid {
				contact.Lat = &lat.Float64
			}
			if lng.Valid {
				contact.Lng = &lng.Float64
			}
			appt.Contact = contact
		}

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
