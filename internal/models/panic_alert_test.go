package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to AlertStatus
		want     bool
	}{
		{AlertStatusActive, AlertStatusResponded, true},
		{AlertStatusActive, AlertStatusResolved, true},
		{AlertStatusActive, AlertStatusFalseAlarm, true},
		{AlertStatusResponded, AlertStatusResolved, true},
		{AlertStatusResponded, AlertStatusFalseAlarm, true},
		{AlertStatusResponded, AlertStatusResponded, true},
		{AlertStatusResponded, AlertStatusActive, false},
		{AlertStatusResolved, AlertStatusResolved, true},
		{AlertStatusResolved, AlertStatusActive, false},
		{AlertStatusFalseAlarm, AlertStatusResponded, false},
		{AlertStatusActive, AlertStatus("escalated"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCountByStatus(t *testing.T) {
	alerts := []*PanicAlert{
		{AlertStatus: AlertStatusActive},
		{AlertStatus: AlertStatusActive},
		{AlertStatus: AlertStatusResponded},
		{AlertStatus: AlertStatusFalseAlarm},
	}

	stats := CountByStatus(alerts)

	assert.Equal(t, AlertStats{Total: 4, Active: 2, Responded: 1, FalseAlarm: 1}, stats)
	assert.Equal(t, AlertStats{}, CountByStatus(nil))
}

func TestSession_CanAccessDistrict(t *testing.T) {
	north, south := uuid.New(), uuid.New()

	global := Session{Role: RoleAdmin}
	districtAdmin := Session{Role: RoleDistrictAdmin, DistrictID: &north}
	unassigned := Session{Role: RoleSecurity}

	assert.True(t, global.CanAccessDistrict(nil))
	assert.True(t, global.CanAccessDistrict(&south))

	assert.True(t, districtAdmin.CanAccessDistrict(&north))
	assert.False(t, districtAdmin.CanAccessDistrict(&south))
	// Тревоги без района видны только глобальному админу
	assert.False(t, districtAdmin.CanAccessDistrict(nil))

	assert.False(t, unassigned.CanAccessDistrict(&north))
	assert.False(t, Session{Role: RoleResident}.IsOperator())
}
