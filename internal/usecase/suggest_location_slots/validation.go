package suggest_location_slots

import (
	"fmt"

	"github.com/feldwerk/scheduling-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if req.CalendarID <= 0 {
		return fmt.Errorf("%w: calendarID must be positive", ErrInvalidInput)
	}

	if req.Customer.District != nil {
		d := *req.Customer.District
		if d < domain.MinDistrict || d > domain.MaxDistrict {
			return fmt.Errorf("%w: got %d", ErrInvalidDistrict, d)
		}
	}

	return nil
}
