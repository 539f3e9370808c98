package domain

// Known document type classifications. RuleBasedExtractor assigns one of
// these from keyword groups; the review-form override forces its own type.
const (
	DocTypeCertificatUnesco   = "certificat_unesco"
	DocTypeAdministratif      = "document_administratif_tunisien"
	DocTypeHoraireOuverture   = "horaire_ouverture"
	DocTypeCertificat         = "certificat"
	DocTypeGenerique          = "document_generique"
	DocTypeScientificReview   = "scientific_review_form"
	DocTypeUnknown            = "unknown"
)

// Extraction method tags reported in record metadata.
const (
	MethodRulesBased = "ocr_rules_based"
	MethodRulesModel = "ocr_rules_model"
)

// Confidence levels per extraction outcome.
const (
	ConfidenceRuleBased = 0.95
	ConfidenceOverride  = 0.99
	ConfidenceFailed    = 0.0
)

// TokenLabel is one (cleaned token, BIO label) pair from the
// token-classification collaborator. Labels follow the O / B-<TYPE> /
// I-<TYPE> convention.
type TokenLabel struct {
	Token string `json:"token"`
	Label string `json:"label"`
}

// ContactInfo holds the first entry of each contact collection.
type ContactInfo struct {
	Telephone string `json:"telephone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Empty reports whether no contact field was extracted.
func (c ContactInfo) Empty() bool {
	return c.Telephone == "" && c.Email == "" && c.Address == "" && c.Website == ""
}

// RuleFields is the candidate field set produced by the rule-based
// extractor. A zero value for any field means the corresponding pattern
// family produced no match; absence is never an error.
type RuleFields struct {
	DocumentType    string
	Title           string
	Organization    string
	Date            string
	AllDates        []string
	ReferenceNumber string
	Location        string
	Persons         []string
	PhoneNumbers    []string
	Emails          []string
	URLs            []string
	Addresses       []string
	ContactInfo     ContactInfo
}

// ReviewFields is the field set extracted by the scientific review form
// override pass. Every field is independent; a non-match leaves it empty.
type ReviewFields struct {
	RegistrationNumber string
	Date               string
	Authors            string
	Title              string
	Recommendation     string
	SuggestedRevision  string
}

// Metadata describes how and when a record was produced.
type Metadata struct {
	FileID           string `json:"file_id"`
	ProcessingTime   string `json:"processing_time"`
	ExtractionMethod string `json:"extraction_method,omitempty"`
	Error            bool   `json:"error,omitempty"`
}

// DocumentRecord is the final, immutable extraction result returned to
// callers. Fields contains only positively-extracted values; missing data
// is an absent key, never a null.
type DocumentRecord struct {
	DocumentType  string         `json:"document_type"`
	Confidence    float64        `json:"confidence"`
	Fields        map[string]any `json:"fields"`
	RawOCRPreview string         `json:"raw_ocr_preview,omitempty"`
	Error         string         `json:"error,omitempty"`
	Metadata      Metadata       `json:"metadata"`
}
