package extract

import (
	"github.com/kaaryaa/identity-engine/constants"
)

// Record is the normalized output of one extraction run. Fields that do not
// apply to the detected document type stay empty and are omitted from JSON;
// a fresh Record is built per invocation.
type Record struct {
	DocumentType constants.DocumentType `json:"document_type"`

	// Identity fields
	IDNumber    string `json:"id_number,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Address     string `json:"address,omitempty"`

	// Banking fields
	IFSCCode string `json:"ifsc_code,omitempty"`
	MICRCode string `json:"micr_code,omitempty"`
	BankName string `json:"bank_name,omitempty"`

	// Income fields
	EmployerName   string `json:"employer_name,omitempty"`
	AssessmentYear string `json:"assessment_year,omitempty"`
	GrossIncome    string `json:"gross_income,omitempty"`
	TaxPaid        string `json:"tax_paid,omitempty"`

	ConfidenceScore  float64                    `json:"confidence_score"`
	ValidationStatus constants.ValidationStatus `json:"validation_status"`
	Warnings         []string                   `json:"warnings"`
}

// Warning strings are stable; callers and tests match on them verbatim.
const (
	WarnPANMissing        = "PAN Missing"
	WarnInvalidPANPattern = "Invalid PAN Pattern"
	WarnNoInstance        = "No document instance detected"
	WarnAadhaarLength     = "Invalid Aadhaar Length"
	WarnIFSCMissing       = "IFSC Missing"
	WarnAccountMissing    = "Account Number Missing"
	WarnGrossSalary       = "Gross Salary not found"
	WarnEmployerName      = "Employer Name not found"
	WarnGrossIncome       = "Gross Income not found"
	WarnAssessmentYear    = "Assessment Year not found"
)

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
