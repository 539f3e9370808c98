// Package reconcile merges the candidate field sets from the rule
// extractor, the review form override, and the BIO entity decoder into
// one final field map with explicit, declared precedence.
package reconcile

import (
	"strings"

	"github.com/admindocx/admindoc-backend/internal/extraction/domain"
)

// Precedence, highest first, per field:
//
//  1. override fields, for the six names the review pass defines
//     (registration_number, date, authors, title, recommendation,
//     suggested_revision); an empty override value never masks a rule
//     value;
//  2. rule extractor fields, with reference_number published under the
//     registration_number key and persons doubling as authors;
//  3. decoded model entities, filling only keys nothing else produced.
//
// After resolution every empty value is stripped: the final map exposes
// only positively-extracted fields.
func Merge(rule *domain.RuleFields, override *domain.ReviewFields, entities map[string]string) map[string]any {
	fields := map[string]any{
		"title":               rule.Title,
		"organization":        rule.Organization,
		"date":                rule.Date,
		"registration_number": rule.ReferenceNumber,
		"location":            rule.Location,
		"contact_info":        rule.ContactInfo,
		"all_dates":           rule.AllDates,
		"persons":             rule.Persons,
		"phone_numbers":       rule.PhoneNumbers,
		"emails":              rule.Emails,
		"urls":                rule.URLs,
		"addresses":           rule.Addresses,
	}
	if len(rule.Persons) > 0 {
		fields["authors"] = rule.Persons
	}

	if override != nil {
		setNonEmpty(fields, "registration_number", override.RegistrationNumber)
		setNonEmpty(fields, "date", override.Date)
		setNonEmpty(fields, "authors", override.Authors)
		setNonEmpty(fields, "title", override.Title)
		setNonEmpty(fields, "recommendation", override.Recommendation)
		setNonEmpty(fields, "suggested_revision", override.SuggestedRevision)
	}

	for entityType, value := range entities {
		key := strings.ToLower(entityType)
		if value == "" {
			continue
		}
		if existing, set := fields[key]; !set || isEmpty(existing) {
			fields[key] = value
		}
	}

	for key, value := range fields {
		if isEmpty(value) {
			delete(fields, key)
		}
	}

	return fields
}

func setNonEmpty(fields map[string]any, key, value string) {
	if value != "" {
		fields[key] = value
	}
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	case domain.ContactInfo:
		return t.Empty()
	default:
		return false
	}
}
