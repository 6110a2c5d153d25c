package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feldwerk/scheduling-service/internal/domain"
	"github.com/feldwerk/scheduling-service/pkg/ptr"
)

func TestApplicableRules(t *testing.T) {
	weekday := "Monday"
	otherDay := "Wednesday"

	rules := []domain.CalendarRule{
		{ScheduleRule: domain.ScheduleRule{ID: 1, CalendarID: 1, Type: domain.RuleTypeWeekly, Weekday: &weekday, Active: true}},
		{ScheduleRule: domain.ScheduleRule{ID: 2, CalendarID: 2, Type: domain.RuleTypeWeekly, Weekday: &otherDay, Active: true}},
		{ScheduleRule: domain.ScheduleRule{ID: 3, CalendarID: 3, Type: domain.RuleTypeWeekly, Weekday: &weekday, Active: true,
			RestrictedToServiceIDs: []int64{10, 11}}},
	}

	// Без услуги: все правила понедельника
	applicable := ApplicableRules(rules, monday, nil)
	require.Len(t, applicable, 2)
	assert.Equal(t, int64(1), applicable[0].ID)
	assert.Equal(t, int64(3), applicable[1].ID)

	// Услуга вне ограничения исключает правило 3
	applicable = ApplicableRules(rules, monday, ptr.Ptr(int64(42)))
	require.Len(t, applicable, 1)
	assert.Equal(t, int64(1), applicable[0].ID)

	// Услуга из ограничения сохраняет правило 3
	applicable = ApplicableRules(rules, monday, ptr.Ptr(int64(10)))
	require.Len(t, applicable, 2)

	// Отсутствие подходящих правил - пустой результат, не ошибка
	applicable = ApplicableRules(nil, monday, nil)
	assert.Empty(t, applicable)
}

func TestRulesForCalendar(t *testing.T) {
	weekday := "Monday"
	rules := []domain.CalendarRule{
		{ScheduleRule: domain.ScheduleRule{ID: 1, CalendarID: 1, Type: domain.RuleTypeWeekly, Weekday: &weekday, Active: true}},
		{ScheduleRule: domain.ScheduleRule{ID: 2, CalendarID: 2, Type: domain.RuleTypeWeekly, Weekday: &weekday, Active: true}},
	}

	filtered := RulesForCalendar(rules, 2)
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(2), filtered[0].ID)

	assert.Empty(t, RulesForCalendar(rules, 99))
}
