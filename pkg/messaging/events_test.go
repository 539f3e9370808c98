package messaging_test

import (
	"encoding/json"
	"testing"

	"github.com/admindocx/admindoc-backend/pkg/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	data := messaging.DocumentProcessedEvent{
		FileID:           "abcd1234",
		DocumentType:     "certificat",
		Confidence:       0.95,
		ExtractionMethod: "ocr_rules_based",
		FieldCount:       4,
	}

	event, err := messaging.NewEvent(messaging.EventDocumentProcessed, "extraction-service", "corr-1", data)
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, messaging.EventDocumentProcessed, event.Type)
	assert.Equal(t, "extraction-service", event.Source)
	assert.Equal(t, "corr-1", event.CorrelationID)
	assert.False(t, event.Timestamp.IsZero())

	var decoded messaging.DocumentProcessedEvent
	require.NoError(t, event.UnmarshalData(&decoded))
	assert.Equal(t, data, decoded)
}

func TestEvent_WireFormat(t *testing.T) {
	event, err := messaging.NewEvent(messaging.EventDocumentFailed, "extraction-service", "corr-2", messaging.DocumentFailedEvent{
		FileID: "abcd1234",
		Error:  "recognition service unavailable",
	})
	require.NoError(t, err)

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded messaging.Event
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, messaging.EventDocumentFailed, decoded.Type)

	var data messaging.DocumentFailedEvent
	require.NoError(t, decoded.UnmarshalData(&data))
	assert.Equal(t, "abcd1234", data.FileID)
	assert.Equal(t, "recognition service unavailable", data.Error)
}
