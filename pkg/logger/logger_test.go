package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithOutput("debug", buf)

	log.WithField("alert_id", "a-1").Info("Panic alert created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Panic alert created", entry["message"])
	assert.Equal(t, "a-1", entry["alert_id"])
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNewWithOutput_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := NewWithOutput("loud", &bytes.Buffer{})

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
