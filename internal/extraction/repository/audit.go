package repository

import (
	"context"
	"time"

	"github.com/admindocx/admindoc-backend/pkg/database"
	"github.com/lib/pq"
)

// ProcessingAuditEntry records a document extraction event. The document
// image and text are never persisted; only field names and processing
// facts are kept for diagnostics.
type ProcessingAuditEntry struct {
	ID                   string         `db:"id"`
	FileID               string         `db:"file_id"`
	DocumentType         string         `db:"document_type"`
	Confidence           float64        `db:"confidence"`
	ExtractionMethod     string         `db:"extraction_method"`
	FieldsExtracted      pq.StringArray `db:"fields_extracted"`
	ProcessingDurationMs int64          `db:"processing_duration_ms"`
	CreatedAt            time.Time      `db:"created_at"`
}

// AuditRepository handles processing audit persistence
type AuditRepository struct {
	db *database.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *database.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create inserts a new processing audit entry
func (r *AuditRepository) Create(ctx context.Context, entry *ProcessingAuditEntry) error {
	query := `
		INSERT INTO document_processing_audit
			(file_id, document_type, confidence, extraction_method, fields_extracted, processing_duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return r.db.QueryRowxContext(ctx, query,
		entry.FileID,
		entry.DocumentType,
		entry.Confidence,
		entry.ExtractionMethod,
		entry.FieldsExtracted,
		entry.ProcessingDurationMs,
	).Scan(&entry.ID, &entry.CreatedAt)
}

// ListByFileID returns the audit entries recorded for a file, newest first
func (r *AuditRepository) ListByFileID(ctx context.Context, fileID string) ([]ProcessingAuditEntry, error) {
	query := `
		SELECT id, file_id, document_type, confidence, extraction_method, fields_extracted, processing_duration_ms, created_at
		FROM document_processing_audit
		WHERE file_id = $1
		ORDER BY created_at DESC`

	var entries []ProcessingAuditEntry
	if err := r.db.SelectContext(ctx, &entries, query, fileID); err != nil {
		return nil, err
	}
	return entries, nil
}
