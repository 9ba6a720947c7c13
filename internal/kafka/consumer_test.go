package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeQualityIssueEvent(t *testing.T) {
	event := QualityIssueEvent{
		ID:         "6f1b0a0e-8f1f-4a6e-9a2b-0c6f3a1d2e4b",
		Code:       "CDG",
		Field:      "country",
		Detail:     "non-domestic record in the reference table",
		DetectedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	got, err := DecodeQualityIssueEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, event, got)
}

func TestDecodeQualityIssueEvent_Malformed(t *testing.T) {
	_, err := DecodeQualityIssueEvent([]byte("not json"))
	assert.Error(t, err)
}
