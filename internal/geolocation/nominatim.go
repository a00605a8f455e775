package geolocation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error,omitempty"`
}

// NominatimGeocoder - клиент публичного сервиса обратного геокодирования
type NominatimGeocoder struct {
	httpClient *resty.Client
}

// NewNominatimGeocoder создает клиента; повторов нет, геокодирование best-effort
func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration) *NominatimGeocoder {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &NominatimGeocoder{httpClient: client}
}

// Reverse возвращает display_name для координат
func (g *NominatimGeocoder) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	var out nominatimResponse
	resp, err := g.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "json",
			"lat":    strconv.FormatFloat(lat, 'f', -1, 64),
			"lon":    strconv.FormatFloat(lon, 'f', -1, 64),
		}).
		SetResult(&out).
		Get("/reverse")
	if err != nil {
		return "", fmt.Errorf("reverse geocoding request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("reverse geocoding failed with status %d", resp.StatusCode())
	}
	if out.Error != "" {
		return "", fmt.Errorf("reverse geocoding error: %s", out.Error)
	}
	if out.DisplayName == "" {
		return "", fmt.Errorf("reverse geocoding returned empty address")
	}
	return out.DisplayName, nil
}
