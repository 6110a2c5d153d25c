package suggest_location_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/feldwerk/scheduling-service/internal/domain"
	"github.com/feldwerk/scheduling-service/internal/scheduling"
	"github.com/feldwerk/scheduling-service/pkg/geospatial"
)

// UseCase use case для получения слотов календаря с оценкой близости
// к существующим записям дня. Путь консультативный: он ранжирует окна
// рабочего времени, фильтрацию конфликтов и прошедшего времени выполняет
// вызывающая сторона при бронировании.
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	geocoder        Geocoder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	geocoder Geocoder,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		geocoder:        geocoder,
		logger:          logger,
	}
}

// Execute вычисляет слоты календаря на дату и аннотирует их расстоянием
// до ближайшей записи этого дня. В качестве опорных точек используются
// записи в любом статусе: отменённый визит всё ещё говорит о том,
// в каком районе работает техник.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestLocationSlots: date=%s, calendar=%d",
		req.Date.Format(domain.DateFormat), req.CalendarID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SuggestLocationSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем правила на дату и оставляем только запрошенный календарь
	rules, err := uc.scheduleRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("SuggestLocationSlots: failed to get rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule rules: %v", ErrInternal, err)
	}

	calendarRules := scheduling.RulesForCalendar(
		scheduling.ApplicableRules(rules, req.Date, nil),
		req.CalendarID,
	)
	if len(calendarRules) == 0 {
		uc.logger.Info("SuggestLocationSlots: no rules for calendar=%d on %s",
			req.CalendarID, req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, CalendarID: req.CalendarID, Slots: []domain.ScoredSlot{}}, nil
	}

	// 3. Генерируем окна с длительностью по умолчанию
	slots, err := scheduling.GenerateAllSlots(calendarRules, req.Date, domain.DefaultServiceDurationMinutes)
	if err != nil {
		uc.logger.Error("SuggestLocationSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 4. Разрешаем координаты клиента
	customerCoord := uc.resolveCoordinates(ctx, req.Customer.toContact())
	if customerCoord == nil {
		// Без координат клиента оценивать нечего - отдаём слоты без оценки
		uc.logger.Info("SuggestLocationSlots: customer coordinates unresolved for calendar=%d", req.CalendarID)
		return &Response{
			Date:       req.Date,
			CalendarID: req.CalendarID,
			Slots:      scheduling.ScoreSlots(slots, nil, nil),
		}, nil
	}

	// 5. Получаем записи календаря за день (все статусы - опорные точки)
	startOfDay := domain.DateOnly(req.Date)
	endOfDay := startOfDay.Add(24*time.Hour - time.Second)

	appointments, err := uc.appointmentRepo.GetByRange(ctx, &req.CalendarID, startOfDay, endOfDay)
	if err != nil {
		uc.logger.Error("SuggestLocationSlots: failed to get appointments for calendar=%d: %v", req.CalendarID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Разрешаем координаты контактов существующих записей;
	// неразрешившиеся пропускаются
	refPoints := make([]geospatial.Coordinate, 0, len(appointments))
	for _, appt := range appointments {
		if coord := uc.resolveCoordinates(ctx, appt.Contact); coord != nil {
			refPoints = append(refPoints, *coord)
		}
	}

	// 7. Аннотируем слоты минимальным расстоянием до опорных точек
	scored := scheduling.ScoreSlots(slots, customerCoord, refPoints)

	uc.logger.Info("SuggestLocationSlots: %d slots for calendar=%d, refPoints=%d",
		len(scored), req.CalendarID, len(refPoints))

	return &Response{
		Date:       req.Date,
		CalendarID: req.CalendarID,
		Slots:      scored,
	}, nil
}
