package extract

import (
	"regexp"

	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/banks"
	"github.com/kaaryaa/identity-engine/internal/docintel"
)

const chequeConfidence = 0.85

var (
	// IFSC structure: 4 letters, literal zero, 6 alphanumerics.
	reIFSC = regexp.MustCompile(`[A-Z]{4}0[A-Z0-9]{6}`)

	reLabeledAccount = regexp.MustCompile(`(?i)(?:A/c|Account|Acc)\s*(?:No|Number)?\.?\s*[:\-]?\s*(\d{9,18})`)
	reDigitRun       = regexp.MustCompile(`\d+`)
)

// extractAccountNumber prefers a labeled number; otherwise it falls back to
// the longest run of 10-18 contiguous digits (first found among ties).
func extractAccountNumber(text string) string {
	if m := reLabeledAccount.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	var best string
	for _, run := range reDigitRun.FindAllString(text, -1) {
		if len(run) < 10 || len(run) > 18 {
			continue
		}
		if len(run) > len(best) {
			best = run
		}
	}
	return best
}

// chequeExtractor has no structured-field support from the engine; every
// field is derived from the full text. The payee name needs positional
// extraction and is deliberately left unset.
type chequeExtractor struct{}

func (chequeExtractor) DocumentType() constants.DocumentType { return constants.DocumentTypeCheque }

func (chequeExtractor) Extract(result *docintel.AnalyzeResult) *Record {
	ifsc := reIFSC.FindString(result.Content)
	account := extractAccountNumber(result.Content)

	var warnings []string
	if ifsc == "" {
		warnings = append(warnings, WarnIFSCMissing)
	}
	if account == "" {
		warnings = append(warnings, WarnAccountMissing)
	}
	status := constants.StatusValid
	if len(warnings) > 0 {
		status = constants.StatusReviewNeeded
	}

	bankName := "Unknown Bank"
	if ifsc != "" {
		bankName = banks.NameForIFSC(ifsc)
	}

	return &Record{
		DocumentType:     constants.DocumentTypeCheque,
		IDNumber:         account,
		IFSCCode:         ifsc,
		BankName:         bankName,
		ConfidenceScore:  chequeConfidence,
		ValidationStatus: status,
		Warnings:         warnings,
	}
}
