package models

import (
	"slices"

	"github.com/google/uuid"
)

// Session - контекст запроса, который явно передается в каждый вызов сервиса
type Session struct {
	UserID     uuid.UUID
	UserName   string
	Role       string
	DistrictID *uuid.UUID
	Language   string
	ClientIP   string
}

// IsOperator - может ли пользователь просматривать и обрабатывать тревоги
func (s Session) IsOperator() bool {
	return slices.Contains(ResponderRoles, s.Role)
}

// IsGlobal - админ без привязки к району видит все тревоги
func (s Session) IsGlobal() bool {
	return s.Role == RoleAdmin && s.DistrictID == nil
}

// CanAccessDistrict проверяет видимость тревоги для оператора.
// Тревоги без района видны только глобальным админам.
func (s Session) CanAccessDistrict(districtID *uuid.UUID) bool {
	if s.IsGlobal() {
		return true
	}
	if s.DistrictID == nil || districtID == nil {
		return false
	}
	return *s.DistrictID == *districtID
}
