// Package extractor derives structured candidate fields from recognized
// document text. The rule extractor applies the shared pattern library as
// independent cascades: a missing match for one field never short-circuits
// another, and no extraction ever fails: absence is the result.
package extractor

import (
	"strings"

	"github.com/admindocx/admindoc-backend/internal/extraction/dates"
	"github.com/admindocx/admindoc-backend/internal/extraction/domain"
	"github.com/admindocx/admindoc-backend/internal/extraction/patterns"
)

// RuleExtractor produces a candidate field set from raw text using the
// pattern library. It holds no per-request state and is safe for
// concurrent use.
type RuleExtractor struct {
	dates dates.Parser
}

// NewRuleExtractor creates a rule extractor using the given date parser.
func NewRuleExtractor(parser dates.Parser) *RuleExtractor {
	return &RuleExtractor{dates: parser}
}

// Extract runs every pattern family against the text and returns the
// resulting candidate set. Running it twice on the same text yields the
// same result.
func (e *RuleExtractor) Extract(text string) *domain.RuleFields {
	fields := &domain.RuleFields{
		DocumentType: classifyDocumentType(text),
		Title:        extractTitle(text),
	}

	fields.ReferenceNumber = extractReference(text)
	fields.AllDates, fields.Date = e.extractDates(text)
	fields.Organization = extractOrganization(text)
	fields.Location = extractLocation(text)
	fields.PhoneNumbers = patterns.Phone.FindAllString(text, -1)
	fields.Emails = patterns.Email.FindAllString(text, -1)
	fields.URLs = patterns.URL.FindAllString(text, -1)
	fields.Addresses = extractAddresses(text)
	fields.Persons = extractPersons(text)
	fields.ContactInfo = deriveContactInfo(fields)

	return fields
}

// classifyDocumentType tests the ordered keyword groups against the
// lowercased text; the first group with any member present wins.
func classifyDocumentType(text string) string {
	lower := strings.ToLower(text)
	for _, group := range patterns.DocumentTypes {
		for _, kw := range group.Keywords {
			if strings.Contains(lower, kw) {
				return group.Type
			}
		}
	}
	return domain.DocTypeGenerique
}

// extractTitle picks the first of the first five non-empty lines that is
// longer than 10 characters and carries none of the structural stoplist
// markers.
func extractTitle(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) > 5 {
		lines = lines[:5]
	}

	for _, line := range lines {
		if len(line) <= 10 {
			continue
		}
		lower := strings.ToLower(line)
		stopped := false
		for _, stop := range patterns.TitleStoplist {
			if strings.Contains(lower, stop) {
				stopped = true
				break
			}
		}
		if !stopped {
			return line
		}
	}
	return ""
}

func extractReference(text string) string {
	for _, re := range patterns.ReferencePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractDates collects every match of every date pattern, in declared
// pattern order, and keeps all candidates the parser accepts. The single
// date field is the first successfully parsed candidate in pattern-list
// order, not textual or chronological order. Duplicates across patterns
// are kept.
func (e *RuleExtractor) extractDates(text string) (all []string, first string) {
	for _, re := range patterns.DatePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			raw := m[1]
			t, ok := e.dates.Parse(raw)
			if !ok {
				continue
			}
			parsed := dates.Format(t)
			all = append(all, parsed)
			if first == "" {
				first = parsed
			}
		}
	}
	return all, first
}

func extractOrganization(text string) string {
	lower := strings.ToLower(text)
	for _, org := range patterns.OrganizationKeywords {
		if strings.Contains(lower, strings.ToLower(org)) {
			return org
		}
	}
	return ""
}

func extractLocation(text string) string {
	for _, re := range patterns.LocationPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

func extractAddresses(text string) []string {
	var addresses []string
	for _, re := range patterns.AddressPatterns {
		addresses = append(addresses, re.FindAllString(text, -1)...)
	}
	return addresses
}

// extractPersons applies every person pattern; a candidate is kept only
// if it has at least two space-separated words and is not already present
// (exact, case-sensitive comparison; OCR noise variants stay distinct).
func extractPersons(text string) []string {
	var persons []string
	for _, pp := range patterns.PersonPatterns {
		for _, m := range pp.Re.FindAllStringSubmatch(text, -1) {
			name := m[pp.Group]
			if len(strings.Fields(name)) < 2 {
				continue
			}
			if containsString(persons, name) {
				continue
			}
			persons = append(persons, name)
		}
	}
	return persons
}

func deriveContactInfo(f *domain.RuleFields) domain.ContactInfo {
	var info domain.ContactInfo
	if len(f.PhoneNumbers) > 0 {
		info.Telephone = f.PhoneNumbers[0]
	}
	if len(f.Emails) > 0 {
		info.Email = f.Emails[0]
	}
	if len(f.Addresses) > 0 {
		info.Address = f.Addresses[0]
	}
	if len(f.URLs) > 0 {
		info.Website = f.URLs[0]
	}
	return info
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
