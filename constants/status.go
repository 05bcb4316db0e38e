package constants

// DocumentType is the discriminator on an extracted identity record.
type DocumentType string

// Stable values (returned verbatim in responses).
const (
	DocumentTypePANCard DocumentType = "PAN_CARD"
	DocumentTypeAadhaar DocumentType = "AADHAAR"
	DocumentTypeCheque  DocumentType = "CHEQUE"
	DocumentTypeForm16  DocumentType = "FORM_16"
	DocumentTypeITRV    DocumentType = "ITR-V"
	DocumentTypeUnknown DocumentType = "UNKNOWN"
)

// ValidationStatus is the overall outcome of structural validation.
type ValidationStatus string

const (
	StatusValid        ValidationStatus = "VALID"         // all expected fields present and well-formed
	StatusReviewNeeded ValidationStatus = "REVIEW_NEEDED" // extracted, but a human should confirm
	StatusInvalid      ValidationStatus = "INVALID"       // a structural check failed outright
)
