package clinicservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с CatalogService
// CatalogService владеет справочниками клиники: ветеринары, питомцы, кабинеты
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CatalogService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetVet получает ветеринара по ID
func (c *Client) GetVet(ctx context.Context, vetID int64) (*Vet, error) {
	url := fmt.Sprintf("%s/internal/vets/%d", c.baseURL, vetID)

	var vet Vet
	if err := c.getJSON(ctx, url, &vet, ErrVetNotFound); err != nil {
		return nil, err
	}

	return &vet, nil
}

// ListVets получает всех ветеринаров клиники
func (c *Client) ListVets(ctx context.Context) ([]*Vet, error) {
	url := fmt.Sprintf("%s/internal/vets", c.baseURL)

	var vets []*Vet
	if err := c.getJSON(ctx, url, &vets, nil); err != nil {
		return nil, err
	}

	return vets, nil
}

// GetPet получает питомца по ID
func (c *Client) GetPet(ctx context.Context, petID int64) (*Pet, error) {
	url := fmt.Sprintf("%s/internal/pets/%d", c.baseURL, petID)

	var pet Pet
	if err := c.getJSON(ctx, url, &pet, ErrPetNotFound); err != nil {
		return nil, err
	}

	return &pet, nil
}

// ListTreatmentRooms получает все процедурные кабинеты клиники
// Порядок по возрастанию ID гарантирует аллокатору детерминированный выбор
func (c *Client) ListTreatmentRooms(ctx context.Context) ([]*TreatmentRoom, error) {
	url := fmt.Sprintf("%s/internal/treatment-rooms", c.baseURL)

	var rooms []*TreatmentRoom
	if err := c.getJSON(ctx, url, &rooms, nil); err != nil {
		return nil, err
	}

	return rooms, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// notFoundErr возвращается на 404; nil означает, что 404 для этого запроса неожиданный
func (c *Client) getJSON(ctx context.Context, url string, dest interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		if notFoundErr != nil {
			return notFoundErr
		}
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
