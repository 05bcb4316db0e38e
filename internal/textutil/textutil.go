// Package textutil holds the text-cleaning primitives shared by the
// per-type extractors: whitespace normalization, gender-token detection
// and pincode-anchored address extraction.
package textutil

import (
	"regexp"
	"strings"
)

var (
	reSpaces    = regexp.MustCompile(`\s+`)
	reGender    = regexp.MustCompile(`(?i)\b(MALE|FEMALE|TRANSGENDER)\b`)
	reAddress   = regexp.MustCompile(`(?i)(?:Address|To)\s*[:]?\s*([\s\S]*?)(\d{6})`)
	rePrintDate = regexp.MustCompile(`(?i)Print Date\s*[:\-]?\s*\d{2}/\d{2}/\d{4},?`)
	reLeadPunct = regexp.MustCompile(`^[:\-\s]+`)
)

// CollapseWhitespace trims the string and collapses internal runs of
// whitespace to single spaces.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// ExtractGender returns the first standalone gender token in the text,
// upper-cased, or "" when none is present.
func ExtractGender(fullText string) string {
	m := reGender.FindString(fullText)
	if m == "" {
		return ""
	}
	return strings.ToUpper(m)
}

// ExtractAddress scans for an address block between an "Address"/"To" label
// and the first 6-digit pincode, strips print-date noise and leading
// punctuation, and returns "address, pincode". Empty when no block matches.
func ExtractAddress(fullText string) string {
	m := reAddress.FindStringSubmatch(fullText)
	if m == nil {
		return ""
	}
	raw := strings.TrimSpace(m[1])
	pincode := m[2]

	clean := rePrintDate.ReplaceAllString(raw, "")
	clean = reLeadPunct.ReplaceAllString(clean, "")
	clean = CollapseWhitespace(clean)
	if clean == "" {
		return pincode
	}
	return clean + ", " + pincode
}
