package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertStatus - статус тревожного сигнала
type AlertStatus string

const (
	AlertStatusActive     AlertStatus = "active"
	AlertStatusResponded  AlertStatus = "responded"
	AlertStatusResolved   AlertStatus = "resolved"
	AlertStatusFalseAlarm AlertStatus = "false_alarm"
)

// Valid проверяет, что статус входит в допустимый набор
func (s AlertStatus) Valid() bool {
	switch s {
	case AlertStatusActive, AlertStatusResponded, AlertStatusResolved, AlertStatusFalseAlarm:
		return true
	}
	return false
}

// Terminal - после resolved и false_alarm статус больше не меняется
func (s AlertStatus) Terminal() bool {
	return s == AlertStatusResolved || s == AlertStatusFalseAlarm
}

// CanTransition описывает допустимые переходы статуса.
// Повторная установка того же статуса разрешена: так оператор правит заметки.
func CanTransition(from, to AlertStatus) bool {
	if !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	switch from {
	case AlertStatusActive:
		return true
	case AlertStatusResponded:
		return to == AlertStatusResolved || to == AlertStatusFalseAlarm
	}
	return false
}

// PanicAlert - запись о нажатии тревожной кнопки
type PanicAlert struct {
	ID                uuid.UUID   `json:"id"`
	UserID            uuid.UUID   `json:"user_id"`
	LocationLatitude  *float64    `json:"location_latitude,omitempty"`
	LocationLongitude *float64    `json:"location_longitude,omitempty"`
	LocationAddress   *string     `json:"location_address,omitempty"`
	AlertStatus       AlertStatus `json:"alert_status"`
	ResponseTime      *time.Time  `json:"response_time,omitempty"`
	RespondedBy       *uuid.UUID  `json:"responded_by,omitempty"`
	Notes             *string     `json:"notes,omitempty"`
	DistrictID        *uuid.UUID  `json:"district_id,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`

	// Заполняется вторым запросом к profiles, в таблице не хранится
	ReporterName  string `json:"reporter_name,omitempty"`
	ResponderName string `json:"responder_name,omitempty"`
}

// HasCoordinates сообщает, удалось ли получить координаты при создании
func (a *PanicAlert) HasCoordinates() bool {
	return a.LocationLatitude != nil && a.LocationLongitude != nil
}

// StatusUpdate - изменение статуса оператором
type StatusUpdate struct {
	AlertID     uuid.UUID
	Status      AlertStatus
	Notes       *string
	OperatorID  uuid.UUID
	SetResponse bool
	// ExpectedUpdatedAt включает проверку на конкурентную запись, nil - last-write-wins
	ExpectedUpdatedAt *time.Time
}

// AlertStats - агрегаты по статусам, посчитанные по выбранной странице
type AlertStats struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Responded  int `json:"responded"`
	Resolved   int `json:"resolved"`
	FalseAlarm int `json:"false_alarm"`
}

// CountByStatus считает агрегаты по уже полученным строкам, а не по всей таблице
func CountByStatus(alerts []*PanicAlert) AlertStats {
	stats := AlertStats{Total: len(alerts)}
	for _, a := range alerts {
		switch a.AlertStatus {
		case AlertStatusActive:
			stats.Active++
		case AlertStatusResponded:
			stats.Responded++
		case AlertStatusResolved:
			stats.Resolved++
		case AlertStatusFalseAlarm:
			stats.FalseAlarm++
		}
	}
	return stats
}
