package models

import "github.com/google/uuid"

// Роли, которым разрешено работать с тревогами
const (
	RoleResident      = "resident"
	RoleSecurity      = "security"
	RoleDistrictAdmin = "district_admin"
	RoleAdmin         = "admin"
)

// ResponderRoles - роли, входящие в список оповещаемых
var ResponderRoles = []string{RoleSecurity, RoleDistrictAdmin, RoleAdmin}

// Profile - профиль жителя или сотрудника
type Profile struct {
	ID             uuid.UUID  `json:"id"`
	FullName       string     `json:"full_name"`
	Role           string     `json:"role"`
	DistrictID     *uuid.UUID `json:"district_id,omitempty"`
	TelegramChatID *int64     `json:"telegram_chat_id,omitempty"`
	Language       string     `json:"language"`
}
