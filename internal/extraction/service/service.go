// Package service orchestrates document field extraction: recognized
// text flows through the rule cascade, the review form override, and the
// BIO entity decoder, converging in the reconciler before the final
// record is assembled.
package service

import (
	"context"
	"time"

	"github.com/admindocx/admindoc-backend/internal/extraction/decoder"
	"github.com/admindocx/admindoc-backend/internal/extraction/domain"
	"github.com/admindocx/admindoc-backend/internal/extraction/events"
	"github.com/admindocx/admindoc-backend/internal/extraction/extractor"
	"github.com/admindocx/admindoc-backend/internal/extraction/ocr"
	"github.com/admindocx/admindoc-backend/internal/extraction/reconcile"
	"github.com/admindocx/admindoc-backend/internal/extraction/repository"
	"github.com/admindocx/admindoc-backend/internal/extraction/storage"
	"github.com/admindocx/admindoc-backend/pkg/logger"
)

// Recognizer is the OCR collaborator boundary.
type Recognizer interface {
	Recognize(ctx context.Context, imageData []byte) (*ocr.Result, error)
}

// Classifier is the token-classification collaborator boundary.
type Classifier interface {
	Classify(ctx context.Context, imageData []byte) ([]domain.TokenLabel, error)
}

// Service runs the extraction engine for one document per call. It holds
// no per-request state; concurrent invocations share only the read-only
// pattern library.
type Service struct {
	rules   *extractor.RuleExtractor
	review  *extractor.ReviewExtractor
	ocr     Recognizer
	model   Classifier // nil when the model collaborator is disabled
	store   *storage.ResultStore
	audit   *repository.AuditRepository     // nil-safe, best effort
	events  *events.DocumentEventPublisher  // nil-safe, best effort
	log     *logger.Logger
	preview int
}

// NewService creates a new extraction service. model, audit and events
// may be nil; the engine degrades to rule-based extraction without them.
func NewService(
	rules *extractor.RuleExtractor,
	review *extractor.ReviewExtractor,
	recognizer Recognizer,
	classifier Classifier,
	store *storage.ResultStore,
	audit *repository.AuditRepository,
	publisher *events.DocumentEventPublisher,
	log *logger.Logger,
	previewLength int,
) *Service {
	if previewLength <= 0 {
		previewLength = 500
	}
	return &Service{
		rules:   rules,
		review:  review,
		ocr:     recognizer,
		model:   classifier,
		store:   store,
		audit:   audit,
		events:  publisher,
		log:     log,
		preview: previewLength,
	}
}

// ProcessImage recognizes the image via the OCR collaborator, optionally
// classifies tokens via the model collaborator, and runs the engine. A
// collaborator failure on the OCR path is unrecoverable and yields the
// minimal error record; a model failure is recoverable noise.
func (s *Service) ProcessImage(ctx context.Context, fileID string, imageData []byte) *domain.DocumentRecord {
	result, err := s.ocr.Recognize(ctx, imageData)
	if err != nil {
		s.log.Error().Err(err).Str("file_id", fileID).Msg("recognition failed")
		return s.fail(ctx, fileID, err)
	}

	var tokens []domain.TokenLabel
	if s.model != nil {
		tokens, err = s.model.Classify(ctx, imageData)
		if err != nil {
			// The model is an enrichment, not a dependency: proceed
			// with rule-based extraction only.
			s.log.Warn().Err(err).Str("file_id", fileID).Msg("token classification failed, continuing without model entities")
			tokens = nil
		}
	}

	return s.ProcessText(ctx, fileID, result.Text, tokens)
}

// ProcessText runs the extraction engine over recognized text and an
// optional token/label sequence and returns the assembled record. It
// never fails: unmatched patterns, malformed label sequences and
// unparsable dates all resolve to absent fields.
func (s *Service) ProcessText(ctx context.Context, fileID, text string, tokens []domain.TokenLabel) *domain.DocumentRecord {
	start := time.Now()

	ruleFields := s.rules.Extract(text)

	var reviewFields *domain.ReviewFields
	documentType := ruleFields.DocumentType
	confidence := domain.ConfidenceRuleBased
	if s.review.Applies(text) {
		reviewFields = s.review.Extract(text)
		documentType = domain.DocTypeScientificReview
		confidence = domain.ConfidenceOverride
	}

	entities := decoder.Decode(tokens)

	method := domain.MethodRulesBased
	if len(entities) > 0 {
		method = domain.MethodRulesModel
	}

	record := s.assemble(fileID, documentType, confidence, method, text, ruleFields, reviewFields, entities)

	s.store.Store(record)

	if s.events != nil {
		s.events.PublishProcessed(ctx, record)
	}
	if s.audit != nil {
		go s.writeAudit(record, time.Since(start))
	}

	s.log.Info().
		Str("file_id", fileID).
		Str("document_type", record.DocumentType).
		Int("fields_extracted", len(record.Fields)).
		Dur("duration", time.Since(start)).
		Msg("document extraction completed")

	return record
}

// GetRecord retrieves a recently processed record by file ID
func (s *Service) GetRecord(fileID string) *domain.DocumentRecord {
	return s.store.Get(fileID)
}

// assemble builds the final document record from the reconciled fields.
func (s *Service) assemble(
	fileID, documentType string,
	confidence float64,
	method, text string,
	ruleFields *domain.RuleFields,
	reviewFields *domain.ReviewFields,
	entities map[string]string,
) *domain.DocumentRecord {
	return &domain.DocumentRecord{
		DocumentType:  documentType,
		Confidence:    confidence,
		Fields:        reconcile.Merge(ruleFields, reviewFields, entities),
		RawOCRPreview: preview(text, s.preview),
		Metadata: domain.Metadata{
			FileID:           fileID,
			ProcessingTime:   time.Now().UTC().Format(time.RFC3339),
			ExtractionMethod: method,
		},
	}
}

// fail assembles the minimal error record: callers always receive a
// structurally valid response and detect failure via confidence 0.0 and
// the error field.
func (s *Service) fail(ctx context.Context, fileID string, err error) *domain.DocumentRecord {
	record := &domain.DocumentRecord{
		DocumentType: domain.DocTypeUnknown,
		Confidence:   domain.ConfidenceFailed,
		Error:        err.Error(),
		Fields:       map[string]any{},
		Metadata: domain.Metadata{
			FileID:         fileID,
			ProcessingTime: time.Now().UTC().Format(time.RFC3339),
			Error:          true,
		},
	}

	s.store.Store(record)
	if s.events != nil {
		s.events.PublishFailed(ctx, fileID, err.Error())
	}

	return record
}

// writeAudit records the processing event; failures are logged, never
// surfaced to the caller.
func (s *Service) writeAudit(record *domain.DocumentRecord, duration time.Duration) {
	fieldKeys := make([]string, 0, len(record.Fields))
	for key := range record.Fields {
		fieldKeys = append(fieldKeys, key)
	}

	entry := &repository.ProcessingAuditEntry{
		FileID:               record.Metadata.FileID,
		DocumentType:         record.DocumentType,
		Confidence:           record.Confidence,
		ExtractionMethod:     record.Metadata.ExtractionMethod,
		FieldsExtracted:      fieldKeys,
		ProcessingDurationMs: duration.Milliseconds(),
	}

	if err := s.audit.Create(context.Background(), entry); err != nil {
		s.log.Error().Err(err).Str("file_id", record.Metadata.FileID).Msg("failed to write processing audit entry")
	}
}

// preview truncates recognized text for the raw_ocr_preview field.
func preview(text string, max int) string {
	if len(text) > max {
		return text[:max] + "..."
	}
	return text
}
