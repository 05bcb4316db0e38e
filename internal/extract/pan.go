package extract

import (
	"regexp"

	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/docintel"
	"github.com/kaaryaa/identity-engine/internal/textutil"
)

// Permanent Account Number: 5 letters, 4 digits, 1 letter.
var rePANExact = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// panExtractor reads the first recognized document instance and validates
// the PAN against its fixed structural pattern.
type panExtractor struct{}

func (panExtractor) DocumentType() constants.DocumentType { return constants.DocumentTypePANCard }

func (panExtractor) Extract(result *docintel.AnalyzeResult) *Record {
	if len(result.Documents) == 0 {
		return &Record{
			DocumentType:     constants.DocumentTypeUnknown,
			ConfidenceScore:  0,
			ValidationStatus: constants.StatusInvalid,
			Warnings:         []string{WarnNoInstance},
		}
	}
	doc := result.Documents[0]

	idNum := doc.Fields["DocumentNumber"].Value()
	name := textutil.CollapseWhitespace(
		doc.Fields["FirstName"].Value() + " " +
			doc.Fields["MiddleName"].Value() + " " +
			doc.Fields["LastName"].Value())

	var warnings []string
	status := constants.StatusValid
	switch {
	case idNum == "":
		warnings = append(warnings, WarnPANMissing)
		status = constants.StatusInvalid
	case !rePANExact.MatchString(idNum):
		warnings = append(warnings, WarnInvalidPANPattern)
		status = constants.StatusInvalid
	}

	// The ID schema carries no gender field; fall back to whole-text matching.
	gender := textutil.ExtractGender(result.Content)

	return &Record{
		DocumentType:     constants.DocumentTypePANCard,
		IDNumber:         idNum,
		FullName:         name,
		Gender:           gender,
		DateOfBirth:      doc.Fields["DateOfBirth"].Value(),
		ConfidenceScore:  doc.Confidence,
		ValidationStatus: status,
		Warnings:         warnings,
	}
}
