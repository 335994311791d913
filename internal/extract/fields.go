// Package extract derives structured candidate data (contact fields
// and skills) from raw resume text.
package extract

import (
	"regexp"
	"strings"

	"github.com/jdkato/prose/v2"

	"resume-extractor/internal/logger"
)

// Record is the structured output of extraction for one resume.
// Any field may be empty; an entirely empty record means extraction
// failed and must not be read as a valid zero-skill resume.
type Record struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Skills  []string `json:"skills"`
	RawText string   `json:"raw_text"`
}

// IsEmpty reports whether extraction produced nothing at all.
func (r Record) IsEmpty() bool {
	return r.Name == "" && r.Email == "" && r.Phone == "" &&
		len(r.Skills) == 0 && strings.TrimSpace(r.RawText) == ""
}

// Fields holds the best-effort contact details found in a resume.
type Fields struct {
	Name  string
	Email string
	Phone string
}

// FieldExtractor finds name, email and phone in raw text.
type FieldExtractor struct {
	emailRegex *regexp.Regexp
	phoneRegex *regexp.Regexp
}

func NewFieldExtractor() *FieldExtractor {
	return &FieldExtractor{
		// local part, "@", domain, TLD of 2+ letters
		emailRegex: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
		// optional "+", digit, 7+ digits/spaces/hyphens, trailing digit
		phoneRegex: regexp.MustCompile(`\+?\d[\d\s-]{7,}\d`),
	}
}

// Extract returns best-effort contact fields. Fields that cannot be
// found come back empty; no failure propagates.
func (e *FieldExtractor) Extract(text string) Fields {
	return Fields{
		Name:  e.extractName(text),
		Email: e.emailRegex.FindString(text),
		Phone: e.phoneRegex.FindString(text),
	}
}

// extractName runs NER over the first non-empty line and returns the
// first PERSON entity. Resumes usually lead with the candidate's
// name; anything else and we accept an empty result.
func (e *FieldExtractor) extractName(text string) string {
	firstLine := ""
	for _, line := range strings.Split(text, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			firstLine = l
			break
		}
	}
	if firstLine == "" {
		return ""
	}

	doc, err := prose.NewDocument(firstLine, prose.WithSegmentation(false))
	if err != nil {
		logger.Warn().Err(err).Msg("field extraction: NER failed, name left empty")
		return ""
	}
	for _, ent := range doc.Entities() {
		if ent.Label == "PERSON" {
			return ent.Text
		}
	}
	return ""
}
