package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/feldwerk/scheduling-service/internal/domain"
	"github.com/feldwerk/scheduling-service/pkg/psqlbuilder"
)

// Repository репозиторий правил рабочего времени
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает правила, потенциально действующие в указанную дату:
// weekly-правила с совпадающим днём недели и certain-правила, чей диапазон
// включает дату. Возвращаются только правила активных календарей, вместе
// с именем сотрудника.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]domain.CalendarRule, error) {
	weekday := date.In(domain.SchedulingLocation).Weekday().String()
	dateOnly := domain.DateOnly(date)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.calendar_id",
		"s.rule_type",
		"s.weekday",
		"s.date_from",
		"s.date_to",
		"s.time_from",
		"s.time_to",
		"s.restricted_to_services",
		"s.active",
		"s.created_at",
		"s.updated_at",
		"c.employee_name",
	).
		From("schedules s").
		Join("calendars c ON s.calendar_id = c.id").
		Where(squirrel.Eq{"c.active": true}).
		Where(squirrel.Eq{"s.active": true}).
		Where(squirrel.Or{
			squirrel.And{
				squirrel.Eq{"s.rule_type": domain.RuleTypeWeekly},
				squirrel.Eq{"s.weekday": weekday},
			},
			squirrel.And{
				squirrel.Eq{"s.rule_type": domain.RuleTypeCertain},
				squirrel.LtOrEq{"s.date_from": dateOnly},
				squirrel.GtOrEq{"s.date_to": dateOnly},
			},
		}).
		OrderBy("s.calendar_id ASC, s.time_from ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRules(rows)
}

// GetByCalendar получает все активные правила одного календаря
func (r *Repository) GetByCalendar(ctx context.Context, calendarID int64) ([]domain.CalendarRule, error) {
	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.calendar_id",
		"s.rule_type",
		"s.weekday",
		"s.date_from",
		"s.date_to",
		"s.time_from",
		"s.time_to",
		"s.restricted_to_services",
		"s.active",
		"s.created_at",
		"s.updated_at",
		"c.employee_name",
	).
		From("schedules s").
		Join("calendars c ON s.calendar_id = c.id").
		Where(squirrel.Eq{"s.calendar_id": calendarID}).
		Where(squirrel.Eq{"s.active": true}).
		OrderBy("s.time_from ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCalendar - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCalendar - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRules(rows)
}

// scanRules сканирует результаты запроса в слайс правил
func (r *Repository) scanRules(rows *sql.Rows) ([]domain.CalendarRule, error) {
	rules := make([]domain.CalendarRule, 0)

	for rows.Next() {
		var rule domain.CalendarRule
		var weekday sql.NullString
		var dateFrom, dateTo sql.NullTime
		var restricted pq.Int64Array
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.CalendarID,
			&rule.Type,
			&weekday,
			&dateFrom,
			&dateTo,
			&rule.TimeFrom,
			&rule.TimeTo,
			&restricted,
			&rule.Active,
			&createdAt,
			&updatedAt,
			&rule.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRules - scan row: %v", ErrScanRow, err)
		}

		if weekday.Valid {
			rule.Weekday = &weekday.String
		}
		if dateFrom.Valid {
			rule.DateFrom = &dateFrom.Time
		}
		if dateTo.Valid {
			rule.DateTo = &dateTo.Time
		}
		rule.RestrictedToServiceIDs = restricted
		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
