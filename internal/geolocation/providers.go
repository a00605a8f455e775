package geolocation

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/oschwald/geoip2-golang"
	"github.com/shenikar/panic_alert_system/internal/models"
)

const (
	SourceDevice = "device"
	SourceGeoIP  = "geoip"
)

// DeviceProvider отдает координаты, которые устройство прислало вместе с запросом
type DeviceProvider struct {
	now func() time.Time
}

func NewDeviceProvider() *DeviceProvider {
	return &DeviceProvider{now: time.Now}
}

func (p *DeviceProvider) CurrentPosition(_ context.Context, req PositionRequest) (*models.Location, error) {
	if req.Fix == nil {
		return nil, ErrNoFix
	}
	loc := *req.Fix
	loc.Source = SourceDevice
	if loc.Timestamp.IsZero() {
		loc.Timestamp = p.now()
	}
	return &loc, nil
}

// GeoIPProvider - режим пониженной точности: город по IP-адресу клиента
type GeoIPProvider struct {
	db  *geoip2.Reader
	now func() time.Time
}

// NewGeoIPProvider открывает базу GeoLite2/GeoIP2 City
func NewGeoIPProvider(path string) (*GeoIPProvider, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open geoip database: %w", err)
	}
	return &GeoIPProvider{db: db, now: time.Now}, nil
}

func (p *GeoIPProvider) CurrentPosition(_ context.Context, req PositionRequest) (*models.Location, error) {
	ip := net.ParseIP(req.ClientIP)
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() {
		return nil, fmt.Errorf("geoip: unusable client address %q: %w", req.ClientIP, ErrNoFix)
	}
	record, err := p.db.City(ip)
	if err != nil {
		return nil, fmt.Errorf("geoip lookup failed: %w", err)
	}
	if record.Location.Latitude == 0 && record.Location.Longitude == 0 {
		return nil, ErrNoFix
	}
	return &models.Location{
		Latitude:  record.Location.Latitude,
		Longitude: record.Location.Longitude,
		// AccuracyRadius в километрах
		Accuracy:  float64(record.Location.AccuracyRadius) * 1000,
		Source:    SourceGeoIP,
		Timestamp: p.now(),
	}, nil
}

func (p *GeoIPProvider) Close() error {
	return p.db.Close()
}
