package decoder_test

import (
	"testing"

	"github.com/admindocx/admindoc-backend/internal/extraction/decoder"
	"github.com/admindocx/admindoc-backend/internal/extraction/domain"
)

func TestCleanToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tunis", "Tunis"},
		{"##isie", "isie"},
		{"ĠArchives", "Archives"},
		{"  spaced  ", "spaced"},
		{"[PAD]", ""},
		{"[CLS]", ""},
		{"[SEP]", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := decoder.CleanToken(tt.in); got != tt.want {
			t.Errorf("CleanToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		tokens []domain.TokenLabel
		want   map[string]string
	}{
		{
			name:   "empty sequence",
			tokens: nil,
			want:   map[string]string{},
		},
		{
			name: "single entity",
			tokens: []domain.TokenLabel{
				{Token: "Ahmed", Label: "B-PER"},
				{Token: "Benali", Label: "I-PER"},
			},
			want: map[string]string{"PER": "Ahmed Benali"},
		},
		{
			name: "continuation for a different type is noise",
			tokens: []domain.TokenLabel{
				{Token: "John", Label: "B-PER"},
				{Token: "Corp", Label: "I-ORG"},
				{Token: "Smith", Label: "I-PER"},
			},
			want: map[string]string{"PER": "John Smith"},
		},
		{
			name: "orphan continuation without open span",
			tokens: []domain.TokenLabel{
				{Token: "Lost", Label: "I-LOC"},
				{Token: "Tunis", Label: "B-LOC"},
			},
			want: map[string]string{"LOC": "Tunis"},
		},
		{
			name: "last occurrence of a type wins",
			tokens: []domain.TokenLabel{
				{Token: "Ahmed", Label: "B-PER"},
				{Token: "the", Label: "O"},
				{Token: "Fatma", Label: "B-PER"},
				{Token: "Zahra", Label: "I-PER"},
			},
			want: map[string]string{"PER": "Fatma Zahra"},
		},
		{
			name: "subword and sentinel tokens are transparent",
			tokens: []domain.TokenLabel{
				{Token: "[CLS]", Label: "O"},
				{Token: "Arch", Label: "B-ORG"},
				{Token: "##ives", Label: "I-ORG"},
				{Token: "[SEP]", Label: "O"},
			},
			want: map[string]string{"ORG": "Arch ives"},
		},
		{
			name: "multiple types",
			tokens: []domain.TokenLabel{
				{Token: "UNESCO", Label: "B-ORG"},
				{Token: "in", Label: "O"},
				{Token: "Tunis", Label: "B-LOC"},
			},
			want: map[string]string{"ORG": "UNESCO", "LOC": "Tunis"},
		},
		{
			name: "empty-token entity start is dropped",
			tokens: []domain.TokenLabel{
				{Token: "[PAD]", Label: "B-PER"},
				{Token: "Benali", Label: "I-PER"},
			},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decoder.Decode(tt.tokens)
			if len(got) != len(tt.want) {
				t.Fatalf("Decode() = %v, want %v", got, tt.want)
			}
			for key, want := range tt.want {
				if got[key] != want {
					t.Errorf("Decode()[%q] = %q, want %q", key, got[key], want)
				}
			}
		})
	}
}
