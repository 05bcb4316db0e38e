package extract

import (
	"regexp"
	"strings"

	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/docintel"
)

const form16Confidence = 0.85

// Amount plausibility floors. minTableAmount keeps row/serial numbers out
// of the table scan; the annual-income band bounds the magnitude heuristic.
const (
	minTableAmount  = 1000.0
	minAnnualIncome = 100000.0
	maxAnnualIncome = 50000000.0
)

// Row-label keywords for salary rows in Part B tables (matched on
// lower-cased, whitespace-collapsed cell text).
var form16AmountKeywords = []string{
	"taxable income",
	"gross salary",
	"net salary",
	"salary received",
	"total amount of salary",
	"amount paid",
	"amount credited",
}

var (
	reAssessmentYear = regexp.MustCompile(`(?i)Assessment\s*Year\s*[:\-]?\s*(\d{4}-\d{2})`)
	reDecimalAmount  = regexp.MustCompile(`\d{1,3}(?:,\d{2,3})+(?:\.\d{1,2})?`)

	reForm16GrossLabel = regexp.MustCompile(
		`(?i)(?:taxable\s*income|gross\s*salary|net\s*salary|salary\s*received|total\s*amount\s*of\s*salary|amount\s*paid|amount\s*credited)[\s\S]{0,80}?(\d{1,3}(?:,\d{2,3})*(?:\.\d{2})?)`)
	reNetTaxPayable   = regexp.MustCompile(`(?i)Net\s*tax\s*payable[\s\S]{0,50}?(\d{1,3}(?:,\d{2,3})*(?:\.\d{2})?)`)
	reTotalTaxPayable = regexp.MustCompile(`(?i)Total\s*Tax\s*Payable[\s\S]{0,50}?(\d{1,3}(?:,\d{2,3})*(?:\.\d{2})?)`)

	reEmployerHeader = regexp.MustCompile(`(?i)name\s*and\s*address\s*of\s*the\s*Employer`)
)

// Lines that are themselves headers and never hold the employer name.
var employerSkipMarkers = []string{"name and address", "employee", "specified senior"}

// grossIncomeStrategy is one tier of the gross-income fallback chain.
type grossIncomeStrategy struct {
	name string
	run  func(result *docintel.AnalyzeResult) (string, bool)
}

// Tiers in strict priority order: a structured table hit suppresses the
// regex tier, which suppresses the magnitude heuristic.
var grossIncomeStrategies = []grossIncomeStrategy{
	{
		name: "table",
		run: func(result *docintel.AnalyzeResult) (string, bool) {
			return scanTablesForAmount(result.Tables, form16AmountKeywords, minTableAmount)
		},
	},
	{
		name: "regex",
		run: func(result *docintel.AnalyzeResult) (string, bool) {
			if m := reForm16GrossLabel.FindStringSubmatch(result.Content); m != nil {
				return m[1], true
			}
			return "", false
		},
	},
	{
		// Last resort: the biggest plausible comma-grouped number in a
		// salary document is likely the gross income.
		name: "magnitude",
		run: func(result *docintel.AnalyzeResult) (string, bool) {
			var best string
			var bestVal float64
			for _, tok := range reDecimalAmount.FindAllString(result.Content, -1) {
				v, ok := cellAmount(tok)
				if !ok || v < minAnnualIncome || v > maxAnnualIncome {
					continue
				}
				if v > bestVal {
					best, bestVal = tok, v
				}
			}
			return best, best != ""
		},
	},
}

// extractGrossIncome runs the fallback chain and reports which tier
// produced the value.
func extractGrossIncome(result *docintel.AnalyzeResult) (value, source string) {
	for _, s := range grossIncomeStrategies {
		if v, ok := s.run(result); ok {
			return v, s.name
		}
	}
	return "", ""
}

// extractEmployerName locates the employer header line, then takes the first
// following line that is not itself header-like, appending the next line
// when it reads as a continuation of a company name.
func extractEmployerName(lines []string) string {
	headerIdx := -1
	for i, line := range lines {
		if reEmployerHeader.MatchString(line) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return ""
	}

	for j := headerIdx + 1; j < len(lines) && j <= headerIdx+6; j++ {
		candidate := strings.TrimSpace(lines[j])
		if candidate == "" {
			continue
		}
		if containsAny(strings.ToLower(candidate), employerSkipMarkers...) {
			continue
		}
		if j+1 < len(lines) {
			next := strings.TrimSpace(lines[j+1])
			if next != "" && next == strings.ToUpper(next) && containsAny(next, "PRIVATE", "LIMITED") {
				candidate += " " + next
			}
		}
		return candidate
	}
	return ""
}

// form16Extractor is the most elaborate strategy: tiered table/regex/
// magnitude extraction for gross income plus line-scan employer resolution.
type form16Extractor struct{}

func (form16Extractor) DocumentType() constants.DocumentType { return constants.DocumentTypeForm16 }

func (form16Extractor) Extract(result *docintel.AnalyzeResult) *Record {
	gross, _ := extractGrossIncome(result)
	employer := extractEmployerName(result.AllLines())

	var assessmentYear string
	if m := reAssessmentYear.FindStringSubmatch(result.Content); m != nil {
		assessmentYear = m[1]
	}

	var tax string
	if m := reNetTaxPayable.FindStringSubmatch(result.Content); m != nil {
		tax = m[1]
	} else if m := reTotalTaxPayable.FindStringSubmatch(result.Content); m != nil {
		tax = m[1]
	}

	var warnings []string
	if gross == "" {
		warnings = append(warnings, WarnGrossSalary)
	}
	if employer == "" {
		warnings = append(warnings, WarnEmployerName)
	}
	status := constants.StatusValid
	if len(warnings) > 0 {
		status = constants.StatusReviewNeeded
	}

	return &Record{
		DocumentType:     constants.DocumentTypeForm16,
		EmployerName:     employer,
		AssessmentYear:   assessmentYear,
		GrossIncome:      gross,
		TaxPaid:          tax,
		ConfidenceScore:  form16Confidence,
		ValidationStatus: status,
		Warnings:         warnings,
	}
}
