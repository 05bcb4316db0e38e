package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/kaaryaa/identity-engine/constants"
)

// BuildRecordJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// serialized Record, used to validate responses before they leave the server.
func BuildRecordJSONSchema() map[string]any {
	optionalString := func() map[string]any {
		return map[string]any{"type": "string", "minLength": 1}
	}
	props := map[string]any{
		"document_type": map[string]any{
			"type": "string",
			"enum": []string{
				string(constants.DocumentTypePANCard),
				string(constants.DocumentTypeAadhaar),
				string(constants.DocumentTypeCheque),
				string(constants.DocumentTypeForm16),
				string(constants.DocumentTypeITRV),
				string(constants.DocumentTypeUnknown),
			},
		},
		"id_number":       optionalString(),
		"full_name":       optionalString(),
		"gender":          optionalString(),
		"date_of_birth":   optionalString(),
		"address":         optionalString(),
		"ifsc_code":       optionalString(),
		"micr_code":       optionalString(),
		"bank_name":       optionalString(),
		"employer_name":   optionalString(),
		"assessment_year": optionalString(),
		"gross_income":    optionalString(),
		"tax_paid":        optionalString(),
		"confidence_score": map[string]any{
			"type": "number", "minimum": 0.0, "maximum": 1.0,
		},
		"validation_status": map[string]any{
			"type": "string",
			"enum": []string{
				string(constants.StatusValid),
				string(constants.StatusReviewNeeded),
				string(constants.StatusInvalid),
			},
		},
		"warnings": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"document_type", "confidence_score", "validation_status", "warnings"},
	}
}

// ValidateRecordJSON validates serialized record bytes against schemaMap.
func ValidateRecordJSON(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("record.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
