// Package patterns is the process-wide pattern library for document field
// extraction. Everything here is compiled once at startup and read-only
// afterwards, so it is safe for unlimited concurrent readers.
package patterns

import "regexp"

// KeywordGroup maps a set of trigger keywords to a document type. Groups
// are tested in declared order against lowercased text; the first group
// with any member present wins.
type KeywordGroup struct {
	Type     string
	Keywords []string
}

// DocumentTypes are the ordered keyword groups for document classification.
var DocumentTypes = []KeywordGroup{
	{Type: "certificat_unesco", Keywords: []string{"unesco", "memoire du monde", "organisation des nations unies"}},
	{Type: "document_administratif_tunisien", Keywords: []string{"archives nationales", "présidence du gouvernement", "république tunisienne"}},
	{Type: "horaire_ouverture", Keywords: []string{"horaires", "horaire", "ouverture", "salle de lecture"}},
	{Type: "certificat", Keywords: []string{"inscription", "certificat", "registration"}},
}

// TitleStoplist disqualifies a line from being a title candidate when any
// of these structural markers appears in it (lowercased containment).
var TitleStoplist = []string{"date", "n°", "numéro", "téléphone", "email", "www"}

// ReferencePatterns locate a reference number by its marker. Tried in
// order; the first match anywhere in the text wins and group 1 is the
// extracted value.
var ReferencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)N[°ºo]\s*:?\s*([A-Z0-9\-/]+)`),
	regexp.MustCompile(`(?i)Ref[ée]rence\s*:?\s*([A-Z0-9\-/]+)`),
	regexp.MustCompile(`(?i)Num[ée]ro\s*:?\s*([A-Z0-9\-/]+)`),
	regexp.MustCompile(`(?i)ID\s*:?\s*([A-Z0-9\-/]+)`),
}

// DatePatterns are the five date shapes collected from raw text. Every
// non-overlapping match of every pattern is handed to the date parser;
// duplicates across patterns are kept on purpose (best-effort collection,
// not a canonical list).
var DatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2}\s+(?:janvier|février|mars|avril|mai|juin|juillet|août|septembre|octobre|novembre|décembre)\s+\d{4})`),
	regexp.MustCompile(`(?i)(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
	regexp.MustCompile(`(?i)(\d{1,2}\s+[A-Za-zÀ-ÿ]+\s+\d{4})`),
	regexp.MustCompile(`(?i)le\s+(\d{1,2}\s+[A-Za-zÀ-ÿ]+\s+\d{4})`),
	regexp.MustCompile(`(?i)(\d{4}[-/]\d{1,2}[-/]\d{1,2})`),
}

// OrganizationKeywords are known organization names tested by
// case-insensitive substring containment, in priority order.
var OrganizationKeywords = []string{
	"UNESCO",
	"Archives Nationales",
	"Présidence du gouvernement",
	"République Tunisienne",
	"Organisation des Nations Unies",
}

// LocationPatterns are positional city/country patterns tried in order;
// only the first match of the first matching pattern is kept.
var LocationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)à\s+([A-Za-zÀ-ÿ]+)`),
	regexp.MustCompile(`(?i)([A-Za-zÀ-ÿ]+)\s+Tunisie`),
	regexp.MustCompile(`(?i)Tunis\s+([A-Za-zÀ-ÿ]+)`),
}

// Contact patterns: all matches are collected, not just the first.
var (
	Phone = regexp.MustCompile(`\(?\d{2,4}\)?[\s\-]?\d{2,3}[\s\-]?\d{2,3}[\s\-]?\d{2,3}`)
	Email = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	URL   = regexp.MustCompile(`www\.\S+|\bhttps?://\S+`)
)

// AddressPatterns are three independent address shapes; matches from all
// of them are appended to one list without deduplication.
var AddressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+,\s+[A-Za-zÀ-ÿ\s\d]+,\s+\d+\s+[A-Za-zÀ-ÿ]+`),
	regexp.MustCompile(`[A-Za-zÀ-ÿ\s]+,\s+\d+\s+[A-Za-zÀ-ÿ]+`),
	regexp.MustCompile(`\d+\s+[A-Za-zÀ-ÿ\s]+\s+\d{4,5}\s+[A-Za-zÀ-ÿ]+`),
}

// PersonPattern pairs a pattern with the capture group holding the
// candidate name, so mixed single-group and multi-group patterns resolve
// explicitly instead of by inspecting the match shape.
type PersonPattern struct {
	Re    *regexp.Regexp
	Group int
}

// PersonPatterns detect named persons: titled-name pairs, parenthetical
// annotations, and "signed by" lines.
var PersonPatterns = []PersonPattern{
	{Re: regexp.MustCompile(`(M\.|Mme|Mlle|Dr|Prof|Directeur|Directrice)\s+([A-Z][a-zÀ-ÿ]+\s+[A-Z][a-zÀ-ÿ]+)`), Group: 2},
	{Re: regexp.MustCompile(`([A-Z][a-zÀ-ÿ]+\s+[A-Z][a-zÀ-ÿ]+)\s+\(([^)]+)\)`), Group: 2},
	{Re: regexp.MustCompile(`Sign[ée]\s+par\s+([A-Z][a-zÀ-ÿ]+\s+[A-Z][a-zÀ-ÿ]+)`), Group: 1},
}

// Scientific review form patterns. RE2 has no lookahead, so the section
// terminators are matched as non-capturing alternations and only group 1
// is extracted.
var (
	ReviewRegistration   = regexp.MustCompile(`(?i)Registration No\.\s*(\S+)`)
	ReviewDate           = regexp.MustCompile(`(?i)Date\s+([A-Za-z]+\s+\d{1,2},\s+\d{4})`)
	ReviewAuthors        = regexp.MustCompile(`(?is)AUTHOR(?:\(S\)|S)?:\s*(.+?)\s*(?:\nTITLE|\nREVIEW|\n\n|$)`)
	ReviewTitle          = regexp.MustCompile(`(?is)TITLE\s*["']?(.+?)["']?\s*(?:\nREVIEW|\n\n|$)`)
	ReviewRecommendation = regexp.MustCompile(`(?i)RECOMMENDATION[:_]\s*(.+)`)
	ReviewRevision       = regexp.MustCompile(`(?is)SUGGESTED REVISIONS?[:_]\s*(.+?)\s*(?:\n\n|$)`)
)

// ReviewMarker is the literal, case-sensitive fingerprint that triggers
// the scientific review form override.
const ReviewMarker = "REVIEW"
