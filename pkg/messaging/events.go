package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	EventDocumentProcessed = "document.processed"
	EventDocumentFailed    = "document.failed"
)

// Exchange names
const (
	ExchangeDocumentEvents = "document.events"
)

// Event is the base event structure
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source, correlationID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            uuid.New().String(),
		Type:          eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Data:          dataBytes,
	}, nil
}

// UnmarshalData unmarshals the event data into the provided struct
func (e *Event) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// DocumentProcessedEvent is published when a document record has been
// assembled, so document-management consumers can index the fields.
type DocumentProcessedEvent struct {
	FileID           string  `json:"file_id"`
	DocumentType     string  `json:"document_type"`
	Confidence       float64 `json:"confidence"`
	ExtractionMethod string  `json:"extraction_method"`
	FieldCount       int     `json:"field_count"`
}

// DocumentFailedEvent is published when extraction ends in an error record.
type DocumentFailedEvent struct {
	FileID string `json:"file_id"`
	Error  string `json:"error"`
}
