package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/panic_alert_system/internal/models"
)

// LocationRequest DTO с координатами устройства
// @Description DTO с координатами устройства
type LocationRequest struct {
	Latitude  *float64   `json:"latitude" validate:"required,latitude"`
	Longitude *float64   `json:"longitude" validate:"required,longitude"`
	Accuracy  float64    `json:"accuracy,omitempty" validate:"gte=0"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// TriggerAlertRequest DTO для отправки тревоги
// @Description DTO для отправки тревоги, координаты необязательны
type TriggerAlertRequest struct {
	Location *LocationRequest `json:"location,omitempty"`
}

// LocationResponse DTO с определенным местоположением
// @Description DTO с определенным местоположением
type LocationResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Address   string    `json:"address,omitempty"`
	Source    string    `json:"source,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// TriggerAlertResponse DTO подтверждения для жителя
// @Description DTO подтверждения для жителя
type TriggerAlertResponse struct {
	AlertID            uuid.UUID         `json:"alert_id"`
	CreatedAt          time.Time         `json:"created_at"`
	Location           *LocationResponse `json:"location,omitempty"`
	LocationText       string            `json:"location_text"`
	LocationAgeSeconds int64             `json:"location_age_seconds"`
	MessagesSent       int               `json:"messages_sent"`
	MessagesFailed     int               `json:"messages_failed"`
	Message            string            `json:"message"`
	Notices            []string          `json:"notices"`
}

// AlertResponse DTO тревоги для инбокса и админки
// @Description DTO тревоги для инбокса и админки
type AlertResponse struct {
	ID                uuid.UUID          `json:"id"`
	UserID            uuid.UUID          `json:"user_id"`
	ReporterName      string             `json:"reporter_name,omitempty"`
	LocationLatitude  *float64           `json:"location_latitude"`
	LocationLongitude *float64           `json:"location_longitude"`
	LocationAddress   *string            `json:"location_address"`
	AlertStatus       models.AlertStatus `json:"alert_status"`
	ResponseTime      *time.Time         `json:"response_time"`
	RespondedBy       *uuid.UUID         `json:"responded_by"`
	ResponderName     string             `json:"responder_name,omitempty"`
	Notes             *string            `json:"notes"`
	DistrictID        *uuid.UUID         `json:"district_id"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// UpdateStatusRequest DTO для смены статуса
// @Description DTO для смены статуса. expected_updated_at включает проверку конкурентной записи
type UpdateStatusRequest struct {
	Status            string     `json:"status" validate:"required,oneof=active responded resolved false_alarm"`
	Notes             *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
	ExpectedUpdatedAt *time.Time `json:"expected_updated_at,omitempty"`
}

// UpdateStatusResponse DTO ответа на смену статуса
// @Description DTO ответа на смену статуса
type UpdateStatusResponse struct {
	Alert   *AlertResponse `json:"alert"`
	Message string         `json:"message"`
}

// AdminQueryRequest параметры выборки админки
type AdminQueryRequest struct {
	Status string `form:"status" validate:"omitempty,oneof=all active responded resolved false_alarm"`
	Range  string `form:"range" validate:"omitempty,oneof=24h 7d 30d all"`
	Search string `form:"search" validate:"max=200"`
	Limit  int    `form:"limit" validate:"gte=0"`
}

// AdminQueryResponse DTO выборки вместе с агрегатами
// @Description DTO выборки вместе с агрегатами по полученным строкам
type AdminQueryResponse struct {
	Alerts []*AlertResponse  `json:"alerts"`
	Stats  models.AlertStats `json:"stats"`
}

// Кадры WebSocket тревожной кнопки
const (
	frameTypePressStart = "press_start"
	frameTypePressEnd   = "press_end"
	frameTypeLocation   = "location"
	frameTypeResult     = "result"
	frameTypeError      = "error"
	frameTypeSnapshot   = "snapshot"
)

// ButtonFrame - входящий кадр от клиента
type ButtonFrame struct {
	Type     string           `json:"type"`
	Location *LocationRequest `json:"location,omitempty"`
}

// ServerFrame - исходящий кадр сервера
type ServerFrame struct {
	Type     string                `json:"type"`
	Progress float64               `json:"progress,omitempty"`
	Result   *TriggerAlertResponse `json:"result,omitempty"`
	Error    string                `json:"error,omitempty"`
}

// InboxFrame - снимок инбокса в потоке realtime
type InboxFrame struct {
	Type   string           `json:"type"`
	Alerts []*AlertResponse `json:"alerts"`
}
