// Package dates normalizes raw date strings matched in document text.
// It covers the two configured locales (French and English); anything it
// cannot parse is discarded by the caller, never treated as an error.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser normalizes a raw date string into a calendar date. ok is false
// when the string is not a recognizable date in the supported locales.
type Parser interface {
	Parse(raw string) (t time.Time, ok bool)
}

// months maps French and English month names (with common accent-less
// OCR variants) to their calendar number.
var months = map[string]time.Month{
	"janvier": time.January, "février": time.February, "fevrier": time.February,
	"mars": time.March, "avril": time.April, "mai": time.May,
	"juin": time.June, "juillet": time.July,
	"août": time.August, "aout": time.August,
	"septembre": time.September, "octobre": time.October,
	"novembre": time.November, "décembre": time.December, "decembre": time.December,

	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
}

var (
	textualDate = regexp.MustCompile(`^(\d{1,2})\s+(\p{L}+)\s+(\d{4})$`)
	numericDate = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})$`)
	isoDate     = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
)

// FrEnParser parses French and English date shapes. Numeric dates are
// read day-first, matching the French convention of the source documents.
type FrEnParser struct{}

func NewFrEnParser() *FrEnParser { return &FrEnParser{} }

func (p *FrEnParser) Parse(raw string) (time.Time, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "le ")
	s = strings.TrimSpace(s)

	if m := textualDate.FindStringSubmatch(s); m != nil {
		month, known := months[m[2]]
		if !known {
			return time.Time{}, false
		}
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		return makeDate(year, month, day)
	}

	if m := isoDate.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return makeDate(year, time.Month(month), day)
	}

	if m := numericDate.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		// Day-first; tolerate month-first input when the day slot
		// cannot be a month.
		if month > 12 && day <= 12 {
			day, month = month, day
		}
		return makeDate(year, time.Month(month), day)
	}

	return time.Time{}, false
}

// makeDate validates the components by round-tripping through time.Date,
// which silently normalizes out-of-range values.
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

// Format renders a parsed date in the canonical YYYY-MM-DD form used in
// extraction fields.
func Format(t time.Time) string {
	return t.Format("2006-01-02")
}
