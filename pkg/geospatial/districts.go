package geospatial

// viennaDistrictCoordinates примерные центры 23 районов Вены
var viennaDistrictCoordinates = map[int]Coordinate{
	1:  {Lat: 48.2085, Lng: 16.3731}, // Innere Stadt
	2:  {Lat: 48.2167, Lng: 16.4000}, // Leopoldstadt
	3:  {Lat: 48.1944, Lng: 16.3944}, // Landstraße
	4:  {Lat: 48.1917, Lng: 16.3667}, // Wieden
	5:  {Lat: 48.1833, Lng: 16.3500}, // Margareten
	6:  {Lat: 48.1983, Lng: 16.3550}, // Mariahilf
	7:  {Lat: 48.2033, Lng: 16.3467}, // Neubau
	8:  {Lat: 48.2100, Lng: 16.3500}, // Josefstadt
	9:  {Lat: 48.2200, Lng: 16.3500}, // Alsergrund
	10: {Lat: 48.1667, Lng: 16.3667}, // Favoriten
	11: {Lat: 48.1667, Lng: 16.4333}, // Simmering
	12: {Lat: 48.1750, Lng: 16.3167}, // Meidling
	13: {Lat: 48.1833, Lng: 16.2833}, // Hietzing
	14: {Lat: 48.2000, Lng: 16.2833}, // Penzing
	15: {Lat: 48.1983, Lng: 16.3250}, // Rudolfsheim-Fünfhaus
	16: {Lat: 48.2167, Lng: 16.3167}, // Ottakring
	17: {Lat: 48.2333, Lng: 16.3167}, // Hernals
	18: {Lat: 48.2333, Lng: 16.3333}, // Währing
	19: {Lat: 48.2500, Lng: 16.3500}, // Döbling
	20: {Lat: 48.2333, Lng: 16.3833}, // Brigittenau
	21: {Lat: 48.2667, Lng: 16.4000}, // Floridsdorf
	22: {Lat: 48.2167, Lng: 16.4667}, // Donaustadt
	23: {Lat: 48.1333, Lng: 16.3000}, // Liesing
}

// DistrictCoordinates возвращает центр района Вены по его номеру.
// Для номеров вне диапазона 1-23 возвращает ok=false.
func DistrictCoordinates(district int) (Coordinate, bool) {
	coord, ok := viennaDistrictCoordinates[district]
	return coord, ok
}
