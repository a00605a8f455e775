package models

import "time"

// TriggerRequest - запуск конвейера тревоги
type TriggerRequest struct {
	// Fix - координаты устройства, если клиент их прислал
	Fix *Location
}

// TriggerResult - подтверждение для жителя
type TriggerResult struct {
	Alert          *PanicAlert
	Location       *Location
	LocationAge    time.Duration
	MessagesSent   int
	MessagesFailed int
	// Notices - идентификаторы локализуемых предупреждений
	Notices []string
}

// AlertQueryResult - выборка админки вместе с агрегатами
type AlertQueryResult struct {
	Alerts []*PanicAlert
	Stats  AlertStats
}
