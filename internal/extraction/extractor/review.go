package extractor

import (
	"strings"

	"github.com/admindocx/admindoc-backend/internal/extraction/domain"
	"github.com/admindocx/admindoc-backend/internal/extraction/patterns"
)

// ReviewExtractor is the domain override pass for the scientific review
// form template. It triggers on a literal, case-sensitive "REVIEW" marker,
// a deliberately narrow fingerprint for one known layout, and its fields
// take precedence over the rule extractor's same-named fields.
type ReviewExtractor struct{}

func NewReviewExtractor() *ReviewExtractor {
	return &ReviewExtractor{}
}

// Applies reports whether the override should run for this text.
func (e *ReviewExtractor) Applies(text string) bool {
	return strings.Contains(text, patterns.ReviewMarker)
}

// Extract re-scans the text with the review form pattern set. Each
// pattern is independent; a non-match leaves its field empty.
func (e *ReviewExtractor) Extract(text string) *domain.ReviewFields {
	fields := &domain.ReviewFields{}

	if m := patterns.ReviewRegistration.FindStringSubmatch(text); m != nil {
		fields.RegistrationNumber = m[1]
	}
	if m := patterns.ReviewDate.FindStringSubmatch(text); m != nil {
		fields.Date = m[1]
	}
	if m := patterns.ReviewAuthors.FindStringSubmatch(text); m != nil {
		fields.Authors = strings.TrimSpace(m[1])
	}
	if m := patterns.ReviewTitle.FindStringSubmatch(text); m != nil {
		fields.Title = strings.TrimSpace(m[1])
	}
	if m := patterns.ReviewRecommendation.FindStringSubmatch(text); m != nil {
		fields.Recommendation = strings.TrimSpace(m[1])
	}
	if m := patterns.ReviewRevision.FindStringSubmatch(text); m != nil {
		fields.SuggestedRevision = strings.TrimSpace(m[1])
	}

	return fields
}
