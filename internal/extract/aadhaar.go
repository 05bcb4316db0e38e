package extract

import (
	"regexp"
	"strings"

	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/docintel"
	"github.com/kaaryaa/identity-engine/internal/textutil"
)

var reNameLabel = regexp.MustCompile(`(?i)(Name|Father's Name)[:\-\s]*`)

const aadhaarFallbackConfidence = 0.8

// aadhaarFields is the merged view over all recognized document instances
// (the engine splits front/back of the card into separate instances).
type aadhaarFields struct {
	id          string
	name        string
	dateOfBirth string
	address     string
	confidences []float64
}

// mergeAadhaarInstances folds the instance sequence with first-wins
// semantics per field and collects every per-instance confidence.
func mergeAadhaarInstances(docs []docintel.Document) aadhaarFields {
	var m aadhaarFields
	for _, doc := range docs {
		if m.id == "" {
			m.id = doc.Fields["DocumentNumber"].Value()
		}
		if m.name == "" {
			m.name = textutil.CollapseWhitespace(
				doc.Fields["FirstName"].Value() + " " + doc.Fields["LastName"].Value())
		}
		if m.address == "" {
			m.address = doc.Fields["Address"].Value()
		}
		if m.dateOfBirth == "" {
			m.dateOfBirth = doc.Fields["DateOfBirth"].Value()
		}
		m.confidences = append(m.confidences, doc.Confidence)
	}
	return m
}

func (m aadhaarFields) confidence() float64 {
	if len(m.confidences) == 0 {
		return aadhaarFallbackConfidence
	}
	var sum float64
	for _, c := range m.confidences {
		sum += c
	}
	return sum / float64(len(m.confidences))
}

// aadhaarExtractor merges fields across all document instances, refines the
// name positionally and validates the 12-digit number.
type aadhaarExtractor struct{}

func (aadhaarExtractor) DocumentType() constants.DocumentType { return constants.DocumentTypeAadhaar }

func (aadhaarExtractor) Extract(result *docintel.AnalyzeResult) *Record {
	merged := mergeAadhaarInstances(result.Documents)

	if merged.name != "" {
		refined := refineNameAnchor(result.AllLines(), merged.name)
		merged.name = strings.TrimSpace(reNameLabel.ReplaceAllString(refined, ""))
	}
	if merged.address == "" {
		merged.address = textutil.ExtractAddress(result.Content)
	}

	var warnings []string
	status := constants.StatusValid
	// Numeric length mismatches on Aadhaar rate a review, not a rejection.
	if merged.id != "" && len(strings.ReplaceAll(merged.id, " ", "")) != 12 {
		warnings = append(warnings, WarnAadhaarLength)
		status = constants.StatusReviewNeeded
	}

	return &Record{
		DocumentType:     constants.DocumentTypeAadhaar,
		IDNumber:         merged.id,
		FullName:         merged.name,
		Gender:           textutil.ExtractGender(result.Content),
		DateOfBirth:      merged.dateOfBirth,
		Address:          merged.address,
		ConfidenceScore:  merged.confidence(),
		ValidationStatus: status,
		Warnings:         warnings,
	}
}
