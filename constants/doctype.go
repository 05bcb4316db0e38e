package constants

import (
	"fmt"
	"strings"
)

// DocType is the caller-declared document type for an extraction request.
type DocType string

// Stable values (accepted verbatim on the wire).
const (
	DocTypeAuto    DocType = "auto" // delegate to the classifier
	DocTypePAN     DocType = "pan"
	DocTypeAadhaar DocType = "aadhaar"
	DocTypeCheque  DocType = "cheque"
	DocTypeForm16  DocType = "form16"
	DocTypeITRV    DocType = "itrv"
)

// ParseDocType maps a caller-supplied string to a DocType.
// Empty input means "auto".
func ParseDocType(s string) (DocType, error) {
	switch DocType(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DocTypeAuto, nil
	case DocTypeAuto:
		return DocTypeAuto, nil
	case DocTypePAN:
		return DocTypePAN, nil
	case DocTypeAadhaar:
		return DocTypeAadhaar, nil
	case DocTypeCheque:
		return DocTypeCheque, nil
	case DocTypeForm16:
		return DocTypeForm16, nil
	case DocTypeITRV:
		return DocTypeITRV, nil
	default:
		return "", fmt.Errorf("unknown doc_type: %q", s)
	}
}
