package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/docintel"
)

func TestExtractGrossIncome_TierPriority(t *testing.T) {
	t.Run("table strategy dominates regex text", func(t *testing.T) {
		r := &docintel.AnalyzeResult{
			// Whole text also carries a label+number the regex tier would hit.
			Content: "Gross Salary 9,99,999.00",
			Tables:  []docintel.Table{salaryTable()},
		}
		value, source := extractGrossIncome(r)
		assert.Equal(t, "12,45,000.00", value)
		assert.Equal(t, "table", source)
	})

	t.Run("regex strategy when tables have no match", func(t *testing.T) {
		r := &docintel.AnalyzeResult{
			Content: "Total amount of salary received from current employer\nRs. 9,99,999.00",
		}
		value, source := extractGrossIncome(r)
		assert.Equal(t, "9,99,999.00", value)
		assert.Equal(t, "regex", source)
	})

	t.Run("magnitude heuristic picks largest in band", func(t *testing.T) {
		r := &docintel.AnalyzeResult{
			Content: "TAN 12,000 quarter 4,80,000 deposited 11,20,500 challan 99,99,99,999",
		}
		value, source := extractGrossIncome(r)
		assert.Equal(t, "11,20,500", value)
		assert.Equal(t, "magnitude", source)
	})

	t.Run("nothing plausible", func(t *testing.T) {
		r := &docintel.AnalyzeResult{Content: "no numbers at all"}
		value, source := extractGrossIncome(r)
		assert.Empty(t, value)
		assert.Empty(t, source)
	})
}

func TestExtractEmployerName(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name: "first non-header line",
			lines: []string{
				"Name and address of the Employer/Specified Bank",
				"ACME INFOTECH PRIVATE LIMITED",
				"Plot 12, Cyber City, Gurgaon",
			},
			want: "ACME INFOTECH PRIVATE LIMITED",
		},
		{
			name: "header-like lines skipped",
			lines: []string{
				"Name and address of the Employer",
				"Name and address of the Employee",
				"Specified senior citizen",
				"Bharat Textiles",
			},
			want: "Bharat Textiles",
		},
		{
			name: "continuation line appended",
			lines: []string{
				"Name and address of the Employer",
				"STANDARD CHARTERED",
				"GBS PRIVATE LIMITED",
				"Chennai 600001",
			},
			want: "STANDARD CHARTERED GBS PRIVATE LIMITED",
		},
		{
			name:  "no header",
			lines: []string{"Part B", "Details of Salary Paid"},
			want:  "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractEmployerName(tc.lines))
		})
	}
}

func TestForm16Extract(t *testing.T) {
	r := &docintel.AnalyzeResult{
		Content: "FORM NO. 16 Assessment Year: 2024-25 Net tax payable 45,000",
		Pages: []docintel.Page{{
			PageNumber: 1,
			Lines: []docintel.Line{
				{Content: "Name and address of the Employer"},
				{Content: "ACME INFOTECH PRIVATE LIMITED"},
			},
		}},
		Tables: []docintel.Table{salaryTable()},
	}

	rec := form16Extractor{}.Extract(r)

	assert.Equal(t, constants.DocumentTypeForm16, rec.DocumentType)
	assert.Equal(t, "ACME INFOTECH PRIVATE LIMITED", rec.EmployerName)
	assert.Equal(t, "2024-25", rec.AssessmentYear)
	assert.Equal(t, "12,45,000.00", rec.GrossIncome)
	assert.Equal(t, "45,000", rec.TaxPaid)
	assert.Equal(t, form16Confidence, rec.ConfidenceScore)
	assert.Equal(t, constants.StatusValid, rec.ValidationStatus)
	assert.Empty(t, rec.Warnings)
}

func TestForm16Extract_TotalTaxFallback(t *testing.T) {
	r := &docintel.AnalyzeResult{
		Content: "FORM 16 Total Tax Payable 52,500 Gross Salary 8,00,000",
	}
	rec := form16Extractor{}.Extract(r)
	assert.Equal(t, "52,500", rec.TaxPaid)
}

func TestForm16Extract_MissingFieldsForceReview(t *testing.T) {
	rec := form16Extractor{}.Extract(&docintel.AnalyzeResult{Content: "FORM 16"})

	assert.Equal(t, constants.StatusReviewNeeded, rec.ValidationStatus)
	assert.Contains(t, rec.Warnings, WarnGrossSalary)
	assert.Contains(t, rec.Warnings, WarnEmployerName)
	assert.Empty(t, rec.GrossIncome)
}
