package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/pkg/requestid"
)

// maxErrorBody сколько байт тела ошибки попадает в текст ошибки
const maxErrorBody = 512

// Client клиент справочника пользователей (UserService)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// GetUser получает пользователя по ID.
// ErrUserNotFound - пользователя нет, ErrServiceUnavailable - сервис не ответил,
// ErrInvalidResponse - сервис ответил, но ответ нельзя использовать.
func (c *Client) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	var user User
	if err := c.getJSON(ctx, "/internal/users/"+strconv.FormatInt(userID, 10), &user); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.log.Info("UserService: user not found: user_id=%d", userID)
		} else {
			c.log.Error("UserService: lookup failed: user_id=%d, request_id=%s, error=%v",
				userID, requestid.FromContext(ctx), err)
		}
		return nil, err
	}

	return user.ToDomain(), nil
}

// getJSON выполняет GET и декодирует ответ 200 в dest
func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrUserNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, readErrorMessage(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// readErrorMessage достает message из ErrorResponse, иначе возвращает тело как есть
func readErrorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(raw)
}
