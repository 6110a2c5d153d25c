package suggest_location_slots

import (
	"context"

	"github.com/feldwerk/scheduling-service/internal/domain"
	"github.com/feldwerk/scheduling-service/pkg/geospatial"
)

// resolveCoordinates разрешает координаты контакта по цепочке источников:
//  1. сохранённые lat/lng на контакте;
//  2. геокодирование адреса (best-effort, ошибки гасятся);
//  3. центр района Вены (1-23).
//
// Если ни один источник не сработал, возвращается nil. Повторных попыток нет.
func (uc *UseCase) resolveCoordinates(ctx context.Context, contact *domain.Contact) *geospatial.Coordinate {
	if contact == nil {
		return nil
	}

	if contact.HasStoredCoordinates() {
		return &geospatial.Coordinate{Lat: *contact.Lat, Lng: *contact.Lng}
	}

	if contact.Address != nil && *contact.Address != "" {
		coord, err := uc.geocoder.Resolve(ctx, *contact.Address)
		if err == nil && coord != nil {
			return coord
		}
		// Любая ошибка геокодирования - переход к следующему источнику
	}

	if contact.District != nil {
		if coord, ok := geospatial.DistrictCoordinates(*contact.District); ok {
			return &coord
		}
	}

	return nil
}
