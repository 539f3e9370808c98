package extractor_test

import (
	"reflect"
	"testing"

	"github.com/admindocx/admindoc-backend/internal/extraction/dates"
	"github.com/admindocx/admindoc-backend/internal/extraction/domain"
	"github.com/admindocx/admindoc-backend/internal/extraction/extractor"
)

func newRuleExtractor() *extractor.RuleExtractor {
	return extractor.NewRuleExtractor(dates.NewFrEnParser())
}

func TestRuleExtractor_DocumentType(t *testing.T) {
	e := newRuleExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"unesco keyword", "Patrimoine documentaire UNESCO", domain.DocTypeCertificatUnesco},
		{"tunisian administration", "Les Archives Nationales de Tunisie", domain.DocTypeAdministratif},
		{"opening hours", "Salle de lecture ouverte de 9h à 17h", domain.DocTypeHoraireOuverture},
		{"certificate", "Certificat délivré au demandeur", domain.DocTypeCertificat},
		{"first matching group wins", "Certificat d'inscription au registre UNESCO", domain.DocTypeCertificatUnesco},
		{"no keyword", "Compte rendu de la séance", domain.DocTypeGenerique},
		{"empty text", "", domain.DocTypeGenerique},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Extract(tt.text).DocumentType; got != tt.want {
				t.Errorf("DocumentType = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRuleExtractor_ReferenceNumber(t *testing.T) {
	e := newRuleExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"degree marker", "N° AB-123", "AB-123"},
		{"reference marker", "Reference: DOS/2023/44", "DOS/2023/44"},
		{"numero marker", "Numéro 778899", "778899"},
		{"no marker", "aucun identifiant ici", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Extract(tt.text).ReferenceNumber; got != tt.want {
				t.Errorf("ReferenceNumber = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRuleExtractor_Title(t *testing.T) {
	e := newRuleExtractor()

	t.Run("first long line without structural markers", func(t *testing.T) {
		text := "CERTIFICAT D'INSCRIPTION\nAu registre international\nTexte"
		if got := e.Extract(text).Title; got != "CERTIFICAT D'INSCRIPTION" {
			t.Errorf("Title = %q", got)
		}
	})

	t.Run("stoplisted lines are skipped", func(t *testing.T) {
		text := "Date: 15 janvier 2023\nTéléphone: standard\nREGISTRE DES ARCHIVES NATIONALES"
		if got := e.Extract(text).Title; got != "REGISTRE DES ARCHIVES NATIONALES" {
			t.Errorf("Title = %q", got)
		}
	})

	t.Run("short lines are skipped", func(t *testing.T) {
		text := "Mémo\nBrouillon\nInventaire du fonds photographique"
		if got := e.Extract(text).Title; got != "Inventaire du fonds photographique" {
			t.Errorf("Title = %q", got)
		}
	})

	t.Run("only the first five lines are considered", func(t *testing.T) {
		text := "a\nb\nc\nd\ne\nUn titre parfaitement valide ici"
		if got := e.Extract(text).Title; got != "" {
			t.Errorf("Title = %q, want empty", got)
		}
	})
}

func TestRuleExtractor_Dates(t *testing.T) {
	e := newRuleExtractor()

	fields := e.Extract("Fait le 15 janvier 2023")

	if fields.Date != "2023-01-15" {
		t.Errorf("Date = %q, want 2023-01-15", fields.Date)
	}
	// Three patterns match the same source span; duplicates are kept.
	if len(fields.AllDates) != 3 {
		t.Fatalf("AllDates = %v, want 3 entries", fields.AllDates)
	}
	for _, d := range fields.AllDates {
		if d != "2023-01-15" {
			t.Errorf("AllDates entry = %q, want 2023-01-15", d)
		}
	}
}

func TestRuleExtractor_DatesUnparsableAreDiscarded(t *testing.T) {
	e := newRuleExtractor()

	fields := e.Extract("Réunion prévue le 31 février 2023")
	if fields.Date != "" || len(fields.AllDates) != 0 {
		t.Errorf("Date = %q, AllDates = %v, want none", fields.Date, fields.AllDates)
	}
}

func TestRuleExtractor_OrganizationAndLocation(t *testing.T) {
	e := newRuleExtractor()

	fields := e.Extract("Document publié par l'unesco à Tunis")

	if fields.Organization != "UNESCO" {
		t.Errorf("Organization = %q, want UNESCO", fields.Organization)
	}
	if fields.Location != "Tunis" {
		t.Errorf("Location = %q, want Tunis", fields.Location)
	}
}

func TestRuleExtractor_Persons(t *testing.T) {
	e := newRuleExtractor()

	t.Run("signed by", func(t *testing.T) {
		fields := e.Extract("Signé par Ahmed Benali")
		want := []string{"Ahmed Benali"}
		if !reflect.DeepEqual(fields.Persons, want) {
			t.Errorf("Persons = %v, want %v", fields.Persons, want)
		}
	})

	t.Run("titled name with parenthetical annotation", func(t *testing.T) {
		fields := e.Extract("Dr Fatma Zahra (Directrice des Archives)")
		// The parenthetical pattern extracts the annotation content.
		want := []string{"Fatma Zahra", "Directrice des Archives"}
		if !reflect.DeepEqual(fields.Persons, want) {
			t.Errorf("Persons = %v, want %v", fields.Persons, want)
		}
	})

	t.Run("single-word candidates are rejected", func(t *testing.T) {
		fields := e.Extract("Signé par Anonyme")
		if len(fields.Persons) != 0 {
			t.Errorf("Persons = %v, want none", fields.Persons)
		}
	})

	t.Run("exact duplicates are removed", func(t *testing.T) {
		fields := e.Extract("Signé par Ahmed Benali\nSigné par Ahmed Benali")
		want := []string{"Ahmed Benali"}
		if !reflect.DeepEqual(fields.Persons, want) {
			t.Errorf("Persons = %v, want %v", fields.Persons, want)
		}
	})
}

func TestRuleExtractor_ContactFields(t *testing.T) {
	e := newRuleExtractor()

	text := "Email: contact@archives.gov.tn\nwww.archives.nat.tn"
	fields := e.Extract(text)

	if want := []string{"contact@archives.gov.tn"}; !reflect.DeepEqual(fields.Emails, want) {
		t.Errorf("Emails = %v, want %v", fields.Emails, want)
	}
	if want := []string{"www.archives.nat.tn"}; !reflect.DeepEqual(fields.URLs, want) {
		t.Errorf("URLs = %v, want %v", fields.URLs, want)
	}
	if fields.ContactInfo.Email != "contact@archives.gov.tn" {
		t.Errorf("ContactInfo.Email = %q", fields.ContactInfo.Email)
	}
	if fields.ContactInfo.Website != "www.archives.nat.tn" {
		t.Errorf("ContactInfo.Website = %q", fields.ContactInfo.Website)
	}
	if fields.ContactInfo.Telephone != "" || fields.ContactInfo.Address != "" {
		t.Errorf("ContactInfo = %+v, want only email and website", fields.ContactInfo)
	}
	// Stoplisted contact lines never become the title.
	if fields.Title != "" {
		t.Errorf("Title = %q, want empty", fields.Title)
	}
}

func TestRuleExtractor_PhoneNumbers(t *testing.T) {
	e := newRuleExtractor()

	fields := e.Extract("Standard: 216 71 560 890")
	if len(fields.PhoneNumbers) != 1 || fields.PhoneNumbers[0] != "216 71 560 890" {
		t.Errorf("PhoneNumbers = %v, want [216 71 560 890]", fields.PhoneNumbers)
	}
	if fields.ContactInfo.Telephone != "216 71 560 890" {
		t.Errorf("ContactInfo.Telephone = %q", fields.ContactInfo.Telephone)
	}
}

func TestRuleExtractor_Idempotent(t *testing.T) {
	e := newRuleExtractor()

	text := "CERTIFICAT D'INSCRIPTION\nRéférence: MOW-2011\nFait le 15 janvier 2023 à Tunis\nSigné par Ahmed Benali"
	first := e.Extract(text)
	second := e.Extract(text)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract is not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestRuleExtractor_EmptyText(t *testing.T) {
	e := newRuleExtractor()

	fields := e.Extract("")

	if fields.DocumentType != domain.DocTypeGenerique {
		t.Errorf("DocumentType = %q, want %q", fields.DocumentType, domain.DocTypeGenerique)
	}
	if fields.Title != "" || fields.ReferenceNumber != "" || fields.Date != "" {
		t.Errorf("unexpected fields from empty text: %+v", fields)
	}
	if !fields.ContactInfo.Empty() {
		t.Errorf("ContactInfo = %+v, want empty", fields.ContactInfo)
	}
}
