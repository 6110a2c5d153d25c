package geospatial

import "math"

// earthRadiusKm радиус Земли в километрах
const earthRadiusKm = 6371

// Coordinate географическая точка в градусах
type Coordinate struct {
	Lat float64
	Lng float64
}

// Distance вычисляет расстояние по дуге большого круга между двумя точками
// по формуле гаверсинусов. Результат в километрах.
func Distance(a, b Coordinate) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// toRad переводит градусы в радианы
func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
