package roomcatalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const (
	retryWaitTime    = 200 * time.Millisecond
	retryMaxWaitTime = 2 * time.Second
)

// Client клиент каталога номеров
type Client struct {
	httpClient *resty.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
// Повторяются только сетевые ошибки и ответы 5xx
func NewClient(baseURL string, timeout time.Duration, retryCount int, log Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || (resp != nil && resp.StatusCode() >= http.StatusInternalServerError)
		}).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		log:        log,
	}
}

// ListRooms получает номера каталога; floor != nil ограничивает выборку этажом
func (c *Client) ListRooms(ctx context.Context, floor *int) ([]domain.Room, error) {
	var result ListRoomsResponse
	var errResp ErrorResponse

	req := c.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&errResp)

	if floor != nil {
		req.SetQueryParam("floor", strconv.Itoa(*floor))
	}

	resp, err := req.Get("/internal/rooms")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode() == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode() >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode(), errResp.Message)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode(), resp.String())
	}

	rooms := make([]domain.Room, 0, len(result.Rooms))
	for _, r := range result.Rooms {
		room, err := r.ToDomain()
		if err != nil {
			c.log.Error("RoomCatalog: rejected room from catalog: %v", err)
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

// GetRoom получает номер по ID
func (c *Client) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	var result Room
	var errResp ErrorResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("roomId", strconv.FormatInt(roomID, 10)).
		SetResult(&result).
		SetError(&errResp).
		Get("/internal/rooms/{roomId}")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode() == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode() == http.StatusNotFound:
		return nil, ErrRoomNotFound
	case resp.StatusCode() >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode(), errResp.Message)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode(), resp.String())
	}

	room, err := result.ToDomain()
	if err != nil {
		c.log.Error("RoomCatalog: rejected room id=%d from catalog: %v", roomID, err)
		return nil, err
	}

	return &room, nil
}
