package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/feldwerk/scheduling-service/internal/domain"
)

// Client клиент каталога услуг
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetService получает услугу по категории и идентификатору
func (c *Client) GetService(ctx context.Context, categoryID, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/categories/%d/services/%d", c.baseURL, categoryID, serviceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrServiceNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var service Service
	if err := json.NewDecoder(resp.Body).Decode(&service); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &service, nil
}

// GetServiceDurationWithGracefulDegradation получает длительность услуги
// с graceful degradation: при недоступности каталога или отсутствии услуги
// возвращается длительность по умолчанию, запрос не падает.
func (c *Client) GetServiceDurationWithGracefulDegradation(ctx context.Context, categoryID, serviceID int64) int {
	service, err := c.GetService(ctx, categoryID, serviceID)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			c.log.Warn("Service category=%d id=%d not found in catalog, using default duration", categoryID, serviceID)
		} else {
			// Повышаем уровень до ERROR, чтобы быстрее заметить недоступность каталога
			c.log.Error("Catalog unavailable, using default duration for category=%d service=%d: %v", categoryID, serviceID, err)
		}
		return domain.DefaultServiceDurationMinutes
	}

	if service.DurationMinutes <= 0 {
		return domain.DefaultServiceDurationMinutes
	}

	return service.DurationMinutes
}
