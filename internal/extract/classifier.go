package extract

import (
	"strings"

	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/docintel"
)

// classifierRule is one ordered classification rule: first match wins.
type classifierRule struct {
	name    string
	docType constants.DocType
	match   func(upper string) bool
}

func containsAny(s string, markers ...string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// Rule order matters: the categories overlap (a cheque carries ID-shaped
// digits, a tax form mentions "income tax"), so the more specific markers
// are tested first.
var classifierRules = []classifierRule{
	{
		name:    "form16-marker",
		docType: constants.DocTypeForm16,
		match: func(s string) bool {
			return containsAny(s, "FORM 16", "FORM NO. 16")
		},
	},
	{
		name:    "itr-acknowledgment",
		docType: constants.DocTypeITRV,
		match: func(s string) bool {
			return containsAny(s, "ITR-V", "INDIAN INCOME TAX RETURN")
		},
	},
	{
		// Banking keywords alone show up in unrelated documents; require a
		// structural IFSC-shaped token as well.
		name:    "cheque-signal",
		docType: constants.DocTypeCheque,
		match: func(s string) bool {
			return containsAny(s, "PAY", "RUPEES", "IFSC", "A/C NO") && reIFSC.MatchString(s)
		},
	},
	{
		name:    "income-tax-department",
		docType: constants.DocTypePAN,
		match: func(s string) bool {
			return containsAny(s, "INCOME TAX DEPARTMENT", "PERMANENT ACCOUNT")
		},
	},
	{
		name:    "national-id",
		docType: constants.DocTypeAadhaar,
		match: func(s string) bool {
			return containsAny(s, "UNIQUE IDENTIFICATION", "AADHAAR")
		},
	},
}

// Classifier selects a document type from whole-document text. It never
// fails: unmatched text falls back to the configured residual type.
type Classifier struct {
	residual constants.DocType
}

func NewClassifier(residual constants.DocType) *Classifier {
	if residual == "" || residual == constants.DocTypeAuto {
		residual = constants.DocTypePAN
	}
	return &Classifier{residual: residual}
}

// Classify inspects an upper-cased copy of the full text against the rule
// list in order. The returned type is never DocTypeAuto.
func (c *Classifier) Classify(result *docintel.AnalyzeResult) constants.DocType {
	upper := strings.ToUpper(result.Content)
	for _, r := range classifierRules {
		if r.match(upper) {
			return r.docType
		}
	}
	return c.residual
}
