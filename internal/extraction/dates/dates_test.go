package dates_test

import (
	"testing"
	"time"

	"github.com/admindocx/admindoc-backend/internal/extraction/dates"
)

func TestFrEnParser_Parse(t *testing.T) {
	p := dates.NewFrEnParser()

	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"15 janvier 2023", "2023-01-15", true},
		{"le 5 mars 2022", "2022-03-05", true},
		{"1 août 2021", "2021-08-01", true},
		{"1 aout 2021", "2021-08-01", true},
		{"7 January 2021", "2021-01-07", true},
		{"25 December 2020", "2020-12-25", true},
		{"15/01/2023", "2023-01-15", true},
		{"15-01-2023", "2023-01-15", true},
		{"15/01/23", "2023-01-15", true},
		{"01/13/2023", "2023-01-13", true}, // month-first tolerated when day slot cannot be a month
		{"2023-01-15", "2023-01-15", true},
		{"2023/1/5", "2023-01-05", true},
		{"31 février 2023", "", false},
		{"29/02/2023", "", false},
		{"13/25/2023", "", false},
		{"15 brumaire 2023", "", false},
		{"notadate", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := p.Parse(tt.raw)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && dates.Format(got) != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.raw, dates.Format(got), tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	d := time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC)
	if got := dates.Format(d); got != "2023-01-05" {
		t.Errorf("Format() = %q, want 2023-01-05", got)
	}
}
