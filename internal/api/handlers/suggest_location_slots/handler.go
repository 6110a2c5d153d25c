package suggest_location_slots

import (
	"errors"
	"net/http"

	"github.com/feldwerk/scheduling-service/internal/api/handlers"
	suggestLocationSlots "github.com/feldwerk/scheduling-service/internal/usecase/suggest_location_slots"
)

const (
	msgMissingDate       = "дата обязательна"
	msgMissingCalendarID = "ID календаря обязателен"
	msgInvalidParams     = "некорректные параметры запроса"
	msgInvalidDistrict   = "некорректный номер района, ожидается число от 1 до 23"
	msgInvalidRequest    = "некорректные данные запроса"
)

type Handler struct {
	useCase SuggestLocationSlotsUseCase
	logger  Logger
}

func NewHandler(useCase SuggestLocationSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/suggest-location-timeslots
// Query params: date (required, YYYY-MM-DD), calendarId (required),
// customerDistrict (1-23), address, lat, lng (все опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /appointments/suggest-location-timeslots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	calendarIDStr := query.Get("calendarId")
	if calendarIDStr == "" {
		h.logger.Warn("GET /appointments/suggest-location-timeslots - Missing calendar ID")
		handlers.RespondBadRequest(w, msgMissingCalendarID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(
		dateStr,
		calendarIDStr,
		query.Get("customerDistrict"),
		query.Get("address"),
		query.Get("lat"),
		query.Get("lng"),
	)
	if err != nil {
		h.logger.Warn("GET /appointments/suggest-location-timeslots - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, suggestLocationSlots.ErrInvalidDistrict):
			h.logger.Warn("GET /appointments/suggest-location-timeslots - Invalid district: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDistrict)

		case errors.Is(err, suggestLocationSlots.ErrInvalidDate), errors.Is(err, suggestLocationSlots.ErrInvalidInput):
			h.logger.Warn("GET /appointments/suggest-location-timeslots - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /appointments/suggest-location-timeslots - Failed to get slots: date=%s, calendar=%s, error=%v",
				dateStr, calendarIDStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/suggest-location-timeslots - Slots retrieved successfully: date=%s, calendar=%s, slots_count=%d",
		dateStr, calendarIDStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
