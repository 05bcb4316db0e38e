package extract

import (
	"regexp"
	"strings"

	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/docintel"
)

const itrvConfidence = 0.9

var (
	reITRVGrossIncome = regexp.MustCompile(`(?i)Gross\s*Total\s*Income[\s\S]*?(\d{1,3}(?:,\d{2,3})*)`)
	reITRVTaxPayable  = regexp.MustCompile(`(?i)(?:Total\s*Tax\s*Payable|Refund)\s*[\s\S]*?(\d{1,3}(?:,\d{2,3})*)`)
	reITRVName        = regexp.MustCompile(`Name[:\s]*([A-Z\s\.]+)`)
	rePANToken        = regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`)
)

// itrvExtractor runs four independent bounded regex extractions over the
// full text; there is no fallback chain for the acknowledgment form.
//
// The status is unconditionally VALID even when every field is absent,
// unlike the other document types. Warnings still report what was missed.
type itrvExtractor struct{}

func (itrvExtractor) DocumentType() constants.DocumentType { return constants.DocumentTypeITRV }

func (itrvExtractor) Extract(result *docintel.AnalyzeResult) *Record {
	content := result.Content

	var assessmentYear, income, tax, name string
	if m := reAssessmentYear.FindStringSubmatch(content); m != nil {
		assessmentYear = m[1]
	}
	if m := reITRVGrossIncome.FindStringSubmatch(content); m != nil {
		income = m[1]
	}
	if m := reITRVTaxPayable.FindStringSubmatch(content); m != nil {
		tax = m[1]
	}
	if m := reITRVName.FindStringSubmatch(content); m != nil {
		name = strings.TrimSpace(m[1])
	}
	pan := rePANToken.FindString(content)

	var warnings []string
	if income == "" {
		warnings = append(warnings, WarnGrossIncome)
	}
	if assessmentYear == "" {
		warnings = append(warnings, WarnAssessmentYear)
	}

	return &Record{
		DocumentType:     constants.DocumentTypeITRV,
		IDNumber:         pan,
		FullName:         name,
		AssessmentYear:   assessmentYear,
		GrossIncome:      income,
		TaxPaid:          tax,
		ConfidenceScore:  itrvConfidence,
		ValidationStatus: constants.StatusValid,
		Warnings:         warnings,
	}
}
