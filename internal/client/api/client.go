package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/sm2sync/pkg/api"
)

// DefaultTimeout is the http.Client timeout used when none is configured.
const DefaultTimeout = 30 * time.Second

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option настраивает Client
type Option func(*Client)

// WithTimeout задаёт общий таймаут HTTP запросов
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient заменяет используемый http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BulkInsertAnswers отправляет пачку записей аналитики.
// Повторная отправка тех же записей безопасна: сервер игнорирует известные id.
func (c *Client) BulkInsertAnswers(ctx context.Context, accessToken string, req api.BulkInsertAnswersRequest) (*api.BulkInsertAnswersResponse, error) {
	var resp api.BulkInsertAnswersResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/answers", accessToken, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateProgress создаёт запись прогресса и возвращает её идентификатор.
// Если запись для вопроса уже есть, сервер возвращает существующий идентификатор.
func (c *Client) CreateProgress(ctx context.Context, accessToken, userID string, p api.Progress) (*api.CreateProgressResponse, error) {
	var resp api.CreateProgressResponse
	path := fmt.Sprintf("/api/v1/users/%s/progress", url.PathEscape(userID))
	if err := c.doRequest(ctx, http.MethodPost, path, accessToken, p, &resp); err != nil {
		return nil, err
	}
	if resp.DocID == "" {
		return nil, &RemoteError{
			Op:   "POST " + path,
			Kind: ErrTransient,
			Err:  errors.New("server returned empty doc id"),
		}
	}
	return &resp, nil
}

// UpdateProgress обновляет существующую запись прогресса
func (c *Client) UpdateProgress(ctx context.Context, accessToken, userID, docID string, p api.Progress) (*api.UpdateProgressResponse, error) {
	var resp api.UpdateProgressResponse
	path := fmt.Sprintf("/api/v1/users/%s/progress/%s", url.PathEscape(userID), url.PathEscape(docID))
	if err := c.doRequest(ctx, http.MethodPut, path, accessToken, p, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListProgress возвращает весь прогресс пользователя на сервере
func (c *Client) ListProgress(ctx context.Context, accessToken, userID string) (*api.ListProgressResponse, error) {
	var resp api.ListProgressResponse
	path := fmt.Sprintf("/api/v1/users/%s/progress", url.PathEscape(userID))
	if err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetQuestion получает содержимое вопроса
func (c *Client) GetQuestion(ctx context.Context, accessToken, id string) (*api.Question, error) {
	var resp api.Question
	path := "/api/v1/questions/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PutQuestion создаёт или заменяет содержимое вопроса
func (c *Client) PutQuestion(ctx context.Context, accessToken string, q api.Question) error {
	path := "/api/v1/questions/" + url.PathEscape(q.ID)
	return c.doRequest(ctx, http.MethodPut, path, accessToken, q, nil)
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос.
// Все ошибки после отправки запроса возвращаются как *RemoteError.
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result any) error {
	op := method + " " + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Нет ответа: сеть, таймаут или отмена контекста
		return &RemoteError{Op: op, Kind: ErrTransient, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteError{Op: op, StatusCode: resp.StatusCode, Kind: ErrTransient, Err: err}
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(respBody))
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			msg = errResp.Error
			if errResp.Message != "" {
				msg += ": " + errResp.Message
			}
		}
		return &RemoteError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Kind:       kindForStatus(resp.StatusCode),
			Err:        errors.New(msg),
		}
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &RemoteError{
				Op:         op,
				StatusCode: resp.StatusCode,
				Kind:       ErrTransient,
				Err:        fmt.Errorf("failed to decode response: %w", err),
			}
		}
	}

	return nil
}
