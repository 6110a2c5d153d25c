package get_time_slots

import (
	"strconv"
	"time"

	"github.com/feldwerk/scheduling-service/internal/domain"
	getTimeSlots "github.com/feldwerk/scheduling-service/internal/usecase/get_time_slots"
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Date            string     `json:"date"`
	DurationMinutes int        `json:"durationMinutes"`
	Slots           []TimeSlot `json:"slots"`
}

// TimeSlot модель временного слота
type TimeSlot struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	CalendarID   int64  `json:"calendarId"`
	EmployeeName string `json:"employeeName"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	slots := make([]TimeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = TimeSlot{
			Start:        slot.Start.Format(time.RFC3339),
			End:          slot.End.Format(time.RFC3339),
			CalendarID:   slot.CalendarID,
			EmployeeName: slot.EmployeeName,
		}
	}

	return &TimeSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, categoryIDStr, serviceIDStr string) (*getTimeSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, domain.SchedulingLocation)
	if err != nil {
		return nil, err
	}

	req := &getTimeSlots.Request{Date: date}

	if categoryIDStr != "" {
		categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CategoryID = &categoryID
	}

	if serviceIDStr != "" {
		serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ServiceID = &serviceID
	}

	return req, nil
}
