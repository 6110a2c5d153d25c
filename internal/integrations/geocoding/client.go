package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/feldwerk/scheduling-service/pkg/geospatial"
)

const geocodeEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// Client клиент Google Maps Geocoding API.
// Работает в режиме best-effort: незаданный ключ или любая ошибка сервиса
// означают для вызывающей стороны "координаты не разрешились", а не отказ.
type Client struct {
	apiKey     string
	region     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента геокодирования.
// region добавляется к адресу для точности ("Vienna, Austria").
func NewClient(apiKey, region string, timeout time.Duration, log Logger) *Client {
	return &Client{
		apiKey: apiKey,
		region: region,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Resolve геокодирует адрес в координаты.
// Возвращает ErrNotConfigured без обращения к сети, если ключ не задан.
func (c *Client) Resolve(ctx context.Context, address string) (*geospatial.Coordinate, error) {
	if c.apiKey == "" {
		c.log.Info("Geocoding skipped for address %q: api key not configured", address)
		return nil, ErrNotConfigured
	}

	fullAddress := address
	if c.region != "" {
		fullAddress = fmt.Sprintf("%s, %s", address, c.region)
	}

	params := url.Values{}
	params.Set("address", fullAddress)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, geocodeEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if payload.Status != "OK" || len(payload.Results) == 0 {
		c.log.Warn("Geocoding failed for address %q: status=%s, error=%s",
			fullAddress, payload.Status, payload.ErrorMessage)
		return nil, ErrNoResults
	}

	location := payload.Results[0].Geometry.Location
	c.log.Info("Geocoding successful: %q -> (%f, %f)", fullAddress, location.Lat, location.Lng)

	return &geospatial.Coordinate{Lat: location.Lat, Lng: location.Lng}, nil
}
