package get_time_slots

import (
	"errors"
	"net/http"

	"github.com/feldwerk/scheduling-service/internal/api/handlers"
	getTimeSlots "github.com/feldwerk/scheduling-service/internal/usecase/get_time_slots"
)

const (
	msgMissingDate    = "дата обязательна"
	msgInvalidParams  = "некорректные параметры запроса, ожидается date=YYYY-MM-DD и числовые categoryId/serviceId"
	msgInvalidRequest = "некорректные данные запроса"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/timeslots
// Query params: date (required, YYYY-MM-DD), categoryId, serviceId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /timeslots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, query.Get("categoryId"), query.Get("serviceId"))
	if err != nil {
		h.logger.Warn("GET /timeslots - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrInvalidDate), errors.Is(err, getTimeSlots.ErrInvalidInput):
			h.logger.Warn("GET /timeslots - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /timeslots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /timeslots - Slots retrieved successfully: date=%s, slots_count=%d",
		dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
