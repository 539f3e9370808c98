package storage

import (
	"strings"
	"sync"
	"time"

	"github.com/admindocx/admindoc-backend/internal/extraction/domain"
	"github.com/google/uuid"
)

// ResultStore provides in-memory storage for recently assembled document
// records so callers can re-fetch a result by file ID. Records are
// dropped after a TTL; the extraction engine itself stays stateless.
type ResultStore struct {
	mu      sync.RWMutex
	records map[string]storedRecord
	ttl     time.Duration
}

type storedRecord struct {
	record    *domain.DocumentRecord
	createdAt time.Time
}

// NewResultStore creates a new in-memory result store with the given TTL
func NewResultStore(ttl time.Duration) *ResultStore {
	s := &ResultStore{
		records: make(map[string]storedRecord),
		ttl:     ttl,
	}
	go s.cleanupLoop()
	return s
}

// GenerateFileID creates a short random document identifier, matching the
// 8-character IDs the upload API has always handed out.
func GenerateFileID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// Store saves a document record under its file ID
func (s *ResultStore) Store(record *domain.DocumentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Metadata.FileID] = storedRecord{
		record:    record,
		createdAt: time.Now(),
	}
}

// Get retrieves a document record by file ID, or nil when unknown/expired
func (s *ResultStore) Get(fileID string) *domain.DocumentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sr, ok := s.records[fileID]; ok {
		return sr.record
	}
	return nil
}

// Delete removes a record from the store
func (s *ResultStore) Delete(fileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, fileID)
}

// cleanupLoop periodically removes expired records
func (s *ResultStore) cleanupLoop() {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()
	for range ticker.C {
		s.cleanup()
	}
}

func (s *ResultStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-s.ttl)
	for id, sr := range s.records {
		if sr.createdAt.Before(cutoff) {
			delete(s.records, id)
		}
	}
}
