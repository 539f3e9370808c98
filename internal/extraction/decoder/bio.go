// Package decoder reconstructs entity spans from BIO-labelled token
// sequences produced by the token-classification collaborator.
package decoder

import (
	"strings"

	"github.com/admindocx/admindoc-backend/internal/extraction/domain"
)

// Structural tokens emitted by the tokenizer that carry no text.
var sentinelTokens = map[string]struct{}{
	"[PAD]": {},
	"[CLS]": {},
	"[SEP]": {},
}

// CleanToken strips sub-word continuation markers and padding/structural
// tokens. It returns "" for tokens that must be dropped; the decoder
// treats a dropped token as transparent.
func CleanToken(token string) string {
	token = strings.ReplaceAll(token, "##", "")
	token = strings.ReplaceAll(token, "Ġ", "") // Ġ word-boundary marker
	token = strings.TrimSpace(token)
	if _, drop := sentinelTokens[token]; drop {
		return ""
	}
	return token
}

// Decode reconstructs contiguous entity spans from an ordered token/label
// sequence. Output holds at most one string per entity type; when a type
// occurs more than once the last occurrence wins. Malformed sequences are
// tolerated, never rejected: an I- tag with no matching open span is
// dropped as noise.
func Decode(tokens []domain.TokenLabel) map[string]string {
	entities := make(map[string]string)

	var current string
	var buffer []string

	for _, tl := range tokens {
		token := CleanToken(tl.Token)
		if token == "" {
			continue
		}

		switch {
		case strings.HasPrefix(tl.Label, "B-"):
			if current != "" && len(buffer) > 0 {
				entities[current] = strings.Join(buffer, " ")
			}
			current = tl.Label[2:]
			buffer = []string{token}

		case strings.HasPrefix(tl.Label, "I-") && current == tl.Label[2:]:
			buffer = append(buffer, token)

		default:
			// O label, or an I- continuation for a type that is not
			// open: the token is dropped without touching state.
		}
	}

	if current != "" && len(buffer) > 0 {
		entities[current] = strings.Join(buffer, " ")
	}

	return entities
}
