package docintel

import (
	"context"
)

// DocumentAnalyzer is the upstream OCR/analysis collaborator: raw document
// bytes in, structured analysis out. A failure here is fatal to the request;
// the extraction pipeline never sees a partial result.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, content []byte, modelID string) (*AnalyzeResult, error)
}
