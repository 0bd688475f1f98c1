package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("debug", "", &buf)

	log.WithField("incident_id", "abc").Info("Incident created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Incident created", entry["msg"])
	assert.Equal(t, "abc", entry["incident_id"])
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNew_TextFormatAndFallbackLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("loud", "TEXT", &buf)

	log.Info("hello")

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "msg=hello")
}
