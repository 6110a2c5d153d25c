package scheduling

import (
	"math"

	"github.com/feldwerk/scheduling-service/internal/domain"
	"github.com/feldwerk/scheduling-service/pkg/geospatial"
)

// ScoreSlots аннотирует окна расстоянием до ближайшей существующей записи
// календаря в этот день. Оценка одна на пару (дата, календарь): она отвечает
// на вопрос "насколько близко к клиенту остальная работа этого дня",
// а не ранжирует окна между собой.
//
// Если customer == nil (координаты клиента не разрешились) или refPoints
// пуст (ни одной записи с разрешимыми координатами), DistanceKm остаётся
// nil и IsOptimal = false - базы для сравнения нет.
func ScoreSlots(slots []domain.TimeSlot, customer *geospatial.Coordinate, refPoints []geospatial.Coordinate) []domain.ScoredSlot {
	scored := make([]domain.ScoredSlot, len(slots))

	if customer == nil || len(refPoints) == 0 {
		for i, slot := range slots {
			scored[i] = domain.ScoredSlot{TimeSlot: slot}
		}
		return scored
	}

	minDistance := math.Inf(1)
	for _, ref := range refPoints {
		if d := geospatial.Distance(*customer, ref); d < minDistance {
			minDistance = d
		}
	}

	// Округление до двух знаков, как отдаёт API
	rounded := math.Round(minDistance*100) / 100
	optimal := rounded <= domain.OptimalDistanceThresholdKm

	for i, slot := range slots {
		distance := rounded
		scored[i] = domain.ScoredSlot{
			TimeSlot:   slot,
			DistanceKm: &distance,
			IsOptimal:  optimal,
		}
	}

	return scored
}
