package geocoding

import "errors"

var (
	// ErrNotConfigured возвращается, когда API-ключ не задан
	ErrNotConfigured = errors.New("geocoding: api key is not configured")

	// ErrNoResults возвращается, когда адрес не удалось геокодировать
	ErrNoResults = errors.New("geocoding: no results for address")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("geocoding: invalid response")

	// ErrInternal возвращается при ошибках выполнения запроса
	ErrInternal = errors.New("geocoding: internal error")
)
