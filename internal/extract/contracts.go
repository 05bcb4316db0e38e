package extract

import (
	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/docintel"
)

// Extractor is one per-type extraction strategy. Extract is a total
// function: internal failures degrade to absent fields plus warnings,
// never an error.
type Extractor interface {
	DocumentType() constants.DocumentType
	Extract(result *docintel.AnalyzeResult) *Record
}
