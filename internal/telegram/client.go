package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type sendLocationRequest struct {
	ChatID    int64   `json:"chat_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// Client - минимальный клиент Bot API: отправка текста и геопозиции.
// Повторов и обработки rate limit нет: каждая отправка - одна попытка.
type Client struct {
	httpClient *resty.Client
	token      string
}

// NewClient создает клиента для бота с токеном token
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		token:      token,
	}
}

// Enabled - настроен ли токен бота
func (c *Client) Enabled() bool {
	return c.token != ""
}

// SendMessage отправляет текстовое сообщение в чат
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
}

// SendLocation отправляет точку на карте
func (c *Client) SendLocation(ctx context.Context, chatID int64, lat, lon float64) error {
	return c.call(ctx, "sendLocation", sendLocationRequest{
		ChatID:    chatID,
		Latitude:  lat,
		Longitude: lon,
	})
}

func (c *Client) call(ctx context.Context, method string, body any) error {
	if !c.Enabled() {
		return fmt.Errorf("telegram bot token is not configured")
	}

	var out apiResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&out).
		Post(fmt.Sprintf("/bot%s/%s", c.token, method))
	if err != nil {
		return fmt.Errorf("telegram %s request failed: %w", method, err)
	}
	if resp.IsError() || !out.OK {
		return fmt.Errorf("telegram %s failed with status %d: %s", method, resp.StatusCode(), out.Description)
	}
	return nil
}
