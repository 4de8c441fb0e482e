package staffservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы со StaffService (справочник мастеров)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента StaffService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStaffMembers получает данные мастеров по списку внутренних ID
// Неизвестные ID просто отсутствуют в ответе - это не ошибка
func (c *Client) GetStaffMembers(ctx context.Context, internalIDs []int64) ([]*domain.StaffMember, error) {
	if len(internalIDs) == 0 {
		return []*domain.StaffMember{}, nil
	}

	idStrings := make([]string, len(internalIDs))
	for i, id := range internalIDs {
		idStrings[i] = strconv.FormatInt(id, 10)
	}

	url := fmt.Sprintf("%s/internal/staff?ids=%s", c.baseURL, strings.Join(idStrings, ","))

	return c.fetchStaffList(ctx, url)
}

// GetAllActiveStaff получает всех активных мастеров организации
// Используется для fallback-ответа "по всем локациям"
func (c *Client) GetAllActiveStaff(ctx context.Context) ([]*domain.StaffMember, error) {
	url := fmt.Sprintf("%s/internal/staff/active", c.baseURL)

	return c.fetchStaffList(ctx, url)
}

func (c *Client) fetchStaffList(ctx context.Context, url string) ([]*domain.StaffMember, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("StaffService request failed: url=%s, error=%v", url, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid staff ids format", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("StaffService unexpected status: url=%s, status=%d", url, resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var list staffListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	staff := make([]*domain.StaffMember, 0, len(list.Staff))
	for i := range list.Staff {
		staff = append(staff, list.Staff[i].ToDomain())
	}

	return staff, nil
}
