package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const notifyFunctionName = "notify-panic-alert"

// FunctionClient вызывает серверную функцию оповещения напрямую, одной попыткой
type FunctionClient struct {
	httpClient *resty.Client
	secret     string
}

// NewFunctionClient создает клиента функций. serviceKey передается как Bearer токен.
func NewFunctionClient(baseURL, serviceKey, secret string, timeout time.Duration) *FunctionClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if serviceKey != "" {
		client.SetAuthToken(serviceKey)
	}

	return &FunctionClient{
		httpClient: client,
		secret:     secret,
	}
}

// Notify реализует Notifier
func (c *FunctionClient) Notify(ctx context.Context, payload NotificationPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}
	return c.Deliver(ctx, data)
}

// Deliver отправляет уже сериализованный вызов
func (c *FunctionClient) Deliver(ctx context.Context, rawPayload []byte) error {
	req := c.httpClient.R().
		SetContext(ctx).
		SetBody(rawPayload)

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if c.secret != "" {
		req.SetHeader("X-Webhook-Signature", generateHMACSHA256(rawPayload, c.secret))
	}

	resp, err := req.Post("/" + notifyFunctionName)
	if err != nil {
		return fmt.Errorf("notification function request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("notification function failed with status code %d", resp.StatusCode())
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
