package models

import (
	"time"

	"github.com/google/uuid"
)

// Диапазоны выборки в админке
const (
	RangeDay   = "24h"
	RangeWeek  = "7d"
	RangeMonth = "30d"
	RangeAll   = "all"
)

// StatusAll отключает фильтр по статусу
const StatusAll = "all"

// AlertFilter - параметры выборки тревог
type AlertFilter struct {
	Status string
	Range  string
	Search string
	// DistrictID ограничивает выборку районом, если AllDistricts == false
	DistrictID   *uuid.UUID
	AllDistricts bool
	Limit        int
}

// RangeWindow возвращает длину окна; ok == false для "all" и неизвестных значений
func RangeWindow(r string) (time.Duration, bool) {
	switch r {
	case RangeDay:
		return 24 * time.Hour, true
	case RangeWeek:
		return 7 * 24 * time.Hour, true
	case RangeMonth:
		return 30 * 24 * time.Hour, true
	}
	return 0, false
}
