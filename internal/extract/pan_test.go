package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/docintel"
)

func panResult(fields map[string]docintel.Field, confidence float64, content string) *docintel.AnalyzeResult {
	return &docintel.AnalyzeResult{
		Content: content,
		Documents: []docintel.Document{
			{DocType: "idDocument", Confidence: confidence, Fields: fields},
		},
	}
}

func TestPANExtract_Valid(t *testing.T) {
	r := panResult(map[string]docintel.Field{
		"DocumentNumber": {ValueString: "ABCDE1234F"},
		"FirstName":      {ValueString: "Ravi "},
		"LastName":       {ValueString: " Sharma"},
		"DateOfBirth":    {ValueDate: "1991-08-15"},
	}, 0.97, "INCOME TAX DEPARTMENT MALE")

	rec := panExtractor{}.Extract(r)

	assert.Equal(t, constants.DocumentTypePANCard, rec.DocumentType)
	assert.Equal(t, "ABCDE1234F", rec.IDNumber)
	assert.Equal(t, "Ravi Sharma", rec.FullName)
	assert.Equal(t, "MALE", rec.Gender)
	assert.Equal(t, "1991-08-15", rec.DateOfBirth)
	assert.Equal(t, 0.97, rec.ConfidenceScore)
	assert.Equal(t, constants.StatusValid, rec.ValidationStatus)
	assert.Empty(t, rec.Warnings)
}

func TestPANExtract_MiddleNameCollapsed(t *testing.T) {
	r := panResult(map[string]docintel.Field{
		"DocumentNumber": {ValueString: "ABCDE1234F"},
		"FirstName":      {ValueString: "Ravi"},
		"MiddleName":     {ValueString: "Kumar"},
		"LastName":       {ValueString: "Sharma"},
	}, 0.9, "")

	rec := panExtractor{}.Extract(r)
	assert.Equal(t, "Ravi Kumar Sharma", rec.FullName)
}

func TestPANExtract_PatternValidation(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		wantStatus  constants.ValidationStatus
		wantWarning string
	}{
		{name: "valid pattern", id: "ABCDE1234F", wantStatus: constants.StatusValid},
		{name: "wrong length", id: "ABCDE1234", wantStatus: constants.StatusInvalid, wantWarning: WarnInvalidPANPattern},
		{name: "lowercase", id: "abcde1234f", wantStatus: constants.StatusInvalid, wantWarning: WarnInvalidPANPattern},
		{name: "digits misplaced", id: "AB1DE23C4F", wantStatus: constants.StatusInvalid, wantWarning: WarnInvalidPANPattern},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := panResult(map[string]docintel.Field{
				"DocumentNumber": {ValueString: tc.id},
			}, 0.9, "")
			rec := panExtractor{}.Extract(r)

			assert.Equal(t, tc.wantStatus, rec.ValidationStatus)
			if tc.wantWarning != "" {
				assert.Contains(t, rec.Warnings, tc.wantWarning)
			} else {
				assert.Empty(t, rec.Warnings)
			}
		})
	}
}

func TestPANExtract_MissingNumber(t *testing.T) {
	r := panResult(map[string]docintel.Field{
		"FirstName": {ValueString: "Ravi"},
	}, 0.9, "")

	rec := panExtractor{}.Extract(r)
	assert.Equal(t, constants.StatusInvalid, rec.ValidationStatus)
	assert.Contains(t, rec.Warnings, WarnPANMissing)
	assert.Empty(t, rec.IDNumber)
}

func TestPANExtract_NoInstance(t *testing.T) {
	rec := panExtractor{}.Extract(&docintel.AnalyzeResult{Content: "some text"})

	require.NotNil(t, rec)
	assert.Equal(t, constants.DocumentTypeUnknown, rec.DocumentType)
	assert.Zero(t, rec.ConfidenceScore)
	assert.Equal(t, constants.StatusInvalid, rec.ValidationStatus)
	assert.Contains(t, rec.Warnings, WarnNoInstance)
}
