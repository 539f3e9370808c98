package events

import (
	"context"

	"github.com/admindocx/admindoc-backend/internal/extraction/domain"
	"github.com/admindocx/admindoc-backend/pkg/logger"
	"github.com/admindocx/admindoc-backend/pkg/messaging"
)

// DocumentEventPublisher publishes document extraction events
type DocumentEventPublisher struct {
	publisher *messaging.Publisher
	logger    *logger.Logger
}

// NewDocumentEventPublisher creates a new document event publisher
func NewDocumentEventPublisher(rmq *messaging.RabbitMQ, log *logger.Logger) (*DocumentEventPublisher, error) {
	publisher, err := messaging.NewPublisher(rmq, messaging.ExchangeDocumentEvents, "extraction-service", log)
	if err != nil {
		return nil, err
	}

	return &DocumentEventPublisher{
		publisher: publisher,
		logger:    log,
	}, nil
}

// PublishProcessed publishes a document processed event
func (p *DocumentEventPublisher) PublishProcessed(ctx context.Context, record *domain.DocumentRecord) {
	data := messaging.DocumentProcessedEvent{
		FileID:           record.Metadata.FileID,
		DocumentType:     record.DocumentType,
		Confidence:       record.Confidence,
		ExtractionMethod: record.Metadata.ExtractionMethod,
		FieldCount:       len(record.Fields),
	}

	if err := p.publisher.Publish(ctx, messaging.EventDocumentProcessed, data); err != nil {
		p.logger.Error().Err(err).Str("file_id", record.Metadata.FileID).Msg("failed to publish document processed event")
	}
}

// PublishFailed publishes a document failed event
func (p *DocumentEventPublisher) PublishFailed(ctx context.Context, fileID, errMsg string) {
	data := messaging.DocumentFailedEvent{
		FileID: fileID,
		Error:  errMsg,
	}

	if err := p.publisher.Publish(ctx, messaging.EventDocumentFailed, data); err != nil {
		p.logger.Error().Err(err).Str("file_id", fileID).Msg("failed to publish document failed event")
	}
}
