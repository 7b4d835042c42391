package colors

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructuredDebugIsGatedByDebugMode(t *testing.T) {
	_, errOut := captureOutput(t)

	StructuredInfo("store", "load", "started", nil, "", nil)
	require.Empty(t, errOut.String())
}

func TestStructuredLogEntryShape(t *testing.T) {
	_, errOut := captureOutput(t)
	SetDebug(true)

	StructuredError("kvstore", "set", "failed", errors.New("disk full"), "notificationCount", map[string]interface{}{"attempt": 1})

	var entry StructuredLogEntry
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(errOut.String())), &entry))
	require.Equal(t, LevelError, entry.Level)
	require.Equal(t, "kvstore", entry.Component)
	require.Equal(t, "disk full", entry.Error)
	require.Equal(t, "notificationCount", entry.ID)
}

func TestDisableStructuredLogging(t *testing.T) {
	_, errOut := captureOutput(t)
	SetDebug(true)
	DisableStructuredLogging()
	t.Cleanup(EnableStructuredLogging)

	StructuredWarn("bus", "publish", "dropped", nil, "", nil)
	require.Empty(t, errOut.String())
}

func TestStructuredLogSurvivesUnencodableFields(t *testing.T) {
	_, errOut := captureOutput(t)
	SetDebug(true)

	StructuredDebug("matchmaking", "tick", "completed", nil, "search-1", map[string]interface{}{"ch": make(chan int)})

	var entry StructuredLogEntry
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(errOut.String())), &entry))
	require.Equal(t, "search-1", entry.ID)
	require.Contains(t, entry.Fields, "encode_error")
}
