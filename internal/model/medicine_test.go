package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoseEvent_UnmarshalTagged(t *testing.T) {
	var e DoseEvent
	err := json.Unmarshal([]byte(`{"date": "2024-05-06T09:00:00Z", "status": "missed"}`), &e)

	require.NoError(t, err)
	assert.Equal(t, DoseStatusMissed, e.Status)
	assert.Equal(t, time.Date(2024, time.May, 6, 9, 0, 0, 0, time.UTC), e.Date.UTC())
}

func TestDoseEvent_UnmarshalLegacyBareTimestamp(t *testing.T) {
	var e DoseEvent
	err := json.Unmarshal([]byte(`"2024-05-06T09:05:00Z"`), &e)

	require.NoError(t, err)
	assert.Equal(t, DoseStatusTaken, e.Status)
	assert.Equal(t, time.Date(2024, time.May, 6, 9, 5, 0, 0, time.UTC), e.Date.UTC())
}

func TestDoseEvent_UnmarshalInvalid(t *testing.T) {
	var e DoseEvent
	err := json.Unmarshal([]byte(`42`), &e)
	assert.Error(t, err)
}

func TestDoseEvent_HistoryMixedShapes(t *testing.T) {
	var history []DoseEvent
	err := json.Unmarshal([]byte(`["2024-05-06T09:05:00Z", {"date": "2024-05-07T09:00:00Z", "status": "taken"}]`), &history)

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, DoseStatusTaken, history[0].Status)
	assert.Equal(t, DoseStatusTaken, history[1].Status)
}
