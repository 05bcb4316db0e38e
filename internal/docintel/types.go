package docintel

import (
	"encoding/json"
	"fmt"
)

// AnalyzeOperation represents the polled Azure Document Intelligence operation envelope.
type AnalyzeOperation struct {
	Status        string         `json:"status"` // "notStarted" | "running" | "succeeded" | "failed"
	AnalyzeResult *AnalyzeResult `json:"analyzeResult,omitempty"`
	Error         *OperationErr  `json:"error,omitempty"`
}

// OperationErr carries the provider-side failure detail for a failed operation.
type OperationErr struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AnalyzeResult is the analysis payload this pipeline consumes: full text,
// page/line geometry, structured document-field predictions and detected tables.
type AnalyzeResult struct {
	APIVersion string     `json:"apiVersion,omitempty"`
	ModelID    string     `json:"modelId,omitempty"`
	Content    string     `json:"content"`
	Pages      []Page     `json:"pages,omitempty"`
	Documents  []Document `json:"documents,omitempty"`
	Tables     []Table    `json:"tables,omitempty"`
}

// Page is a single page; line order matches vertical reading order.
type Page struct {
	PageNumber int    `json:"pageNumber"`
	Lines      []Line `json:"lines,omitempty"`
}

// Line is one recognized line of text.
type Line struct {
	Content string `json:"content"`
}

// Document is one recognized document instance. The engine may return more
// than one per physical upload (e.g. front/back of an ID card).
type Document struct {
	DocType    string           `json:"docType,omitempty"`
	Confidence float64          `json:"confidence"`
	Fields     map[string]Field `json:"fields,omitempty"`
}

// Field is a structured field prediction with a typed value.
type Field struct {
	Type        string  `json:"type,omitempty"`
	Content     string  `json:"content,omitempty"`
	ValueString string  `json:"valueString,omitempty"`
	ValueDate   string  `json:"valueDate,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
}

// Value returns the best available string form of the field, or "" when the
// prediction carries no value.
func (f Field) Value() string {
	switch {
	case f.ValueString != "":
		return f.ValueString
	case f.ValueDate != "":
		return f.ValueDate
	default:
		return f.Content
	}
}

// Table is a detected table. Cell (RowIndex, ColumnIndex) pairs are unique.
type Table struct {
	RowCount    int    `json:"rowCount"`
	ColumnCount int    `json:"columnCount"`
	Cells       []Cell `json:"cells,omitempty"`
}

// Cell is a single table cell with its grid position.
type Cell struct {
	RowIndex    int    `json:"rowIndex"`
	ColumnIndex int    `json:"columnIndex"`
	Content     string `json:"content"`
}

// DecodeResult decodes a saved analysis payload. Both the bare analyzeResult
// shape and the full operation envelope are accepted, so payloads captured
// from either API surface replay identically.
func DecodeResult(data []byte) (*AnalyzeResult, error) {
	var op AnalyzeOperation
	if err := json.Unmarshal(data, &op); err == nil && op.AnalyzeResult != nil {
		return op.AnalyzeResult, nil
	}
	var res AnalyzeResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("decode analyze result: %w", err)
	}
	return &res, nil
}

// AllLines flattens pages into one line-text sequence preserving reading order.
func (r *AnalyzeResult) AllLines() []string {
	var lines []string
	for _, p := range r.Pages {
		for _, l := range p.Lines {
			lines = append(lines, l.Content)
		}
	}
	return lines
}
