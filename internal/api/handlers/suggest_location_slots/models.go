package suggest_location_slots

import (
	"strconv"
	"time"

	"github.com/feldwerk/scheduling-service/internal/domain"
	suggestLocationSlots "github.com/feldwerk/scheduling-service/internal/usecase/suggest_location_slots"
)

// LocationSlotsResponse HTTP response model
type LocationSlotsResponse struct {
	Date       string       `json:"date"`
	CalendarID int64        `json:"calendarId"`
	Slots      []ScoredSlot `json:"slots"`
}

// ScoredSlot модель слота с оценкой близости.
// distanceKm отсутствует в JSON, если расстояние оценить не удалось.
type ScoredSlot struct {
	Start        string   `json:"start"`
	End          string   `json:"end"`
	CalendarID   int64    `json:"calendarId"`
	EmployeeName string   `json:"employeeName"`
	DistanceKm   *float64 `json:"distanceKm,omitempty"`
	IsOptimal    bool     `json:"isOptimal"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestLocationSlots.Response) *LocationSlotsResponse {
	slots := make([]ScoredSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = ScoredSlot{
			Start:        slot.Start.Format(time.RFC3339),
			End:          slot.End.Format(time.RFC3339),
			CalendarID:   slot.CalendarID,
			EmployeeName: slot.EmployeeName,
			DistanceKm:   slot.DistanceKm,
			IsOptimal:    slot.IsOptimal,
		}
	}

	return &LocationSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		CalendarID: resp.CalendarID,
		Slots:      slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, calendarIDStr, districtStr, address, latStr, lngStr string) (*suggestLocationSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, domain.SchedulingLocation)
	if err != nil {
		return nil, err
	}

	calendarID, err := strconv.ParseInt(calendarIDStr, 10, 64)
	if err != nil {
		return nil, err
	}

	req := &suggestLocationSlots.Request{
		Date:       date,
		CalendarID: calendarID,
	}

	if districtStr != "" {
		district, err := strconv.Atoi(districtStr)
		if err != nil {
			return nil, err
		}
		req.Customer.District = &district
	}

	if address != "" {
		req.Customer.Address = &address
	}

	if latStr != "" && lngStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return nil, err
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return nil, err
		}
		req.Customer.Lat = &lat
		req.Customer.Lng = &lng
	}

	return req, nil
}
