package get_time_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/feldwerk/scheduling-service/internal/domain"
	"github.com/feldwerk/scheduling-service/internal/scheduling"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	catalogClient   CatalogClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	catalogClient CatalogClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		catalogClient:   catalogClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute вычисляет доступные слоты на дату:
// отбор правил -> генерация окон -> фильтр конфликтов -> фильтр прошедшего.
// Отсутствие правил или записей - не ошибка, а пустой список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeSlots: date=%s, category=%v, service=%v",
		req.Date.Format(domain.DateFormat), req.CategoryID, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTimeSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Длительность услуги: из каталога, если услуга указана, иначе дефолт
	durationMinutes := domain.DefaultServiceDurationMinutes
	if req.CategoryID != nil && req.ServiceID != nil {
		durationMinutes = uc.catalogClient.GetServiceDurationWithGracefulDegradation(ctx, *req.CategoryID, *req.ServiceID)
	}

	// 3. Получаем правила, действующие в дату
	rules, err := uc.scheduleRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to get rules for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get schedule rules: %v", ErrInternal, err)
	}

	// 4. Отбираем применимые правила (с учётом ограничения по услуге)
	applicable := scheduling.ApplicableRules(rules, req.Date, req.ServiceID)
	if len(applicable) == 0 {
		uc.logger.Info("GetTimeSlots: no applicable rules for date=%s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, DurationMinutes: durationMinutes, Slots: []domain.TimeSlot{}}, nil
	}

	// 5. Генерируем временные окна по всем правилам
	slots, err := scheduling.GenerateAllSlots(applicable, req.Date, durationMinutes)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 6. Получаем все записи за день по всем календарям
	startOfDay := domain.DateOnly(req.Date)
	endOfDay := startOfDay.Add(24*time.Hour - time.Second)

	appointments, err := uc.appointmentRepo.GetByRange(ctx, nil, startOfDay, endOfDay)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Убираем окна, занятые подтверждёнными записями
	available := scheduling.WithoutConflicts(slots, appointments)

	// 8. Убираем прошедшие окна (с допуском на расхождение часов)
	future := scheduling.WithoutPast(available, uc.timeProvider.Now())

	uc.logger.Info("GetTimeSlots: %d slots for date=%s (generated=%d, after conflicts=%d)",
		len(future), req.Date.Format(domain.DateFormat), len(slots), len(available))

	return &Response{
		Date:            req.Date,
		DurationMinutes: durationMinutes,
		Slots:           future,
	}, nil
}
