package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/common"
	"github.com/kaaryaa/identity-engine/internal/docintel"
)

func newTestPipeline() *Pipeline {
	return NewPipeline(common.PipelineConfig{ResidualType: constants.DocTypePAN}, nil)
}

func TestPipelineRun_ChequeEndToEnd(t *testing.T) {
	r := &docintel.AnalyzeResult{
		Content: "PAY Ravi Kumar RUPEES Twenty Thousand Only A/c No: 123456789012 SBIN0001234",
	}

	rec := newTestPipeline().Run(context.Background(), r, constants.DocTypeAuto)

	require.NotNil(t, rec)
	assert.Equal(t, constants.DocumentTypeCheque, rec.DocumentType)
	assert.Equal(t, "SBIN0001234", rec.IFSCCode)
	assert.Equal(t, "State Bank of India", rec.BankName)
}

func TestPipelineRun_DeclaredTypeSkipsClassifier(t *testing.T) {
	// Text reads like a cheque, but the caller declared form16.
	r := &docintel.AnalyzeResult{
		Content: "PAY RUPEES SBIN0001234",
	}

	rec := newTestPipeline().Run(context.Background(), r, constants.DocTypeForm16)
	assert.Equal(t, constants.DocumentTypeForm16, rec.DocumentType)
}

func TestPipelineRun_EmptyDeclaredClassifies(t *testing.T) {
	r := &docintel.AnalyzeResult{Content: "UNIQUE IDENTIFICATION AUTHORITY"}
	rec := newTestPipeline().Run(context.Background(), r, "")
	assert.Equal(t, constants.DocumentTypeAadhaar, rec.DocumentType)
}

func TestPipelineRun_ConfidenceAlwaysInRange(t *testing.T) {
	inputs := []*docintel.AnalyzeResult{
		{},
		{Content: "FORM 16"},
		{Content: "ITR-V"},
		{Content: "PAY RUPEES SBIN0001234"},
		{Content: "AADHAAR", Documents: []docintel.Document{{Confidence: 1.2}}},
		{Content: "PERMANENT ACCOUNT", Documents: []docintel.Document{{Confidence: -0.5}}},
	}
	p := newTestPipeline()
	for _, r := range inputs {
		rec := p.Run(context.Background(), r, constants.DocTypeAuto)
		require.NotNil(t, rec)
		assert.GreaterOrEqual(t, rec.ConfidenceScore, 0.0)
		assert.LessOrEqual(t, rec.ConfidenceScore, 1.0)
		assert.NotNil(t, rec.Warnings)
	}
}

func TestPipelineRun_ResidualDispatch(t *testing.T) {
	r := &docintel.AnalyzeResult{Content: "unclassifiable"}

	rec := NewPipeline(common.PipelineConfig{ResidualType: constants.DocTypeAadhaar}, nil).
		Run(context.Background(), r, constants.DocTypeAuto)
	assert.Equal(t, constants.DocumentTypeAadhaar, rec.DocumentType)
}
