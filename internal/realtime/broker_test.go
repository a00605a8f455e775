package realtime

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Match(t *testing.T) {
	district := uuid.New()
	other := uuid.New()

	tests := []struct {
		name   string
		filter Filter
		event  ChangeEvent
		want   bool
	}{
		{"empty filter matches all", Filter{}, ChangeEvent{EventType: EventUpdate}, true},
		{"event kind filtered", Filter{Events: []string{EventInsert}}, ChangeEvent{EventType: EventUpdate}, false},
		{"event kind matched", Filter{Events: []string{EventInsert}}, ChangeEvent{EventType: EventInsert}, true},
		{"district matched", Filter{DistrictID: &district}, ChangeEvent{EventType: EventInsert, DistrictID: &district}, true},
		{"other district", Filter{DistrictID: &district}, ChangeEvent{EventType: EventInsert, DistrictID: &other}, false},
		{"event without district", Filter{DistrictID: &district}, ChangeEvent{EventType: EventInsert}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(tt.event))
		})
	}
}

func TestDecodeEvent(t *testing.T) {
	alertID := uuid.New()

	ev, err := decodeEvent(`{"eventType":"INSERT","table":"panic_alerts","alertId":"` + alertID.String() + `"}`)
	require.NoError(t, err)
	assert.Equal(t, EventInsert, ev.EventType)
	assert.Equal(t, alertID, ev.AlertID)

	_, err = decodeEvent("garbage")
	assert.Error(t, err)
}
