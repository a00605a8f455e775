package models

import "time"

// Location - координаты пользователя с отметкой времени получения
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Address   string    `json:"address,omitempty"`
	Source    string    `json:"source,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Age возвращает возраст координат относительно now
func (l *Location) Age(now time.Time) time.Duration {
	return now.Sub(l.Timestamp)
}
