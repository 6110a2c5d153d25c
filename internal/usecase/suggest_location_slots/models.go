package suggest_location_slots

import (
	"time"

	"github.com/feldwerk/scheduling-service/internal/domain"
)

// Request модель запроса на получение слотов с оценкой близости
type Request struct {
	Date       time.Time // Дата, на которую запрашиваются слоты
	CalendarID int64     // Календарь (техник), для которого считаются слоты
	Customer   Customer  // Данные клиента для разрешения координат
}

// Customer данные клиента; любое из полей может отсутствовать.
// Координаты разрешаются по цепочке: Lat/Lng -> геокодирование Address ->
// центр района District -> не разрешились.
type Customer struct {
	Address  *string
	District *int
	Lat      *float64
	Lng      *float64
}

// toContact собирает доменный контакт из данных запроса,
// чтобы переиспользовать общую цепочку разрешения координат
func (c Customer) toContact() *domain.Contact {
	return &domain.Contact{
		Address:  c.Address,
		District: c.District,
		Lat:      c.Lat,
		Lng:      c.Lng,
	}
}

// Response модель ответа со списком слотов и оценкой близости
type Response struct {
	Date       time.Time
	CalendarID int64
	Slots      []domain.ScoredSlot
}
