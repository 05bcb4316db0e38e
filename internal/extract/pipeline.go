package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/common"
	"github.com/kaaryaa/identity-engine/internal/docintel"
)

// Pipeline classifies an analysis result (when the caller declared "auto")
// and dispatches to the matching per-type extractor. Instances are
// stateless; one pipeline may serve concurrent invocations.
type Pipeline struct {
	logger     *slog.Logger
	classifier *Classifier
	extractors map[constants.DocType]Extractor
}

func NewPipeline(cfg common.PipelineConfig, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		logger:     logger,
		classifier: NewClassifier(cfg.ResidualType),
		extractors: map[constants.DocType]Extractor{
			constants.DocTypePAN:     panExtractor{},
			constants.DocTypeAadhaar: aadhaarExtractor{},
			constants.DocTypeCheque:  chequeExtractor{},
			constants.DocTypeForm16:  form16Extractor{},
			constants.DocTypeITRV:    itrvExtractor{},
		},
	}
}

// Run produces a best-effort record for one analysis result. It is total:
// every input terminates with a record, never an error.
func (p *Pipeline) Run(ctx context.Context, result *docintel.AnalyzeResult, declared constants.DocType) *Record {
	start := time.Now()
	reqID := common.RequestIDFromContext(ctx)

	selected := declared
	if selected == constants.DocTypeAuto || selected == "" {
		selected = p.classifier.Classify(result)
		p.logger.Info("pipeline.classified",
			"req_id", reqID, "declared", string(declared), "selected", string(selected))
	}

	ex, ok := p.extractors[selected]
	if !ok {
		// Declared types are parsed upstream; an unregistered type can only
		// mean a residual misconfiguration. Fall back to PAN.
		p.logger.Warn("pipeline.unregistered_type", "req_id", reqID, "selected", string(selected))
		ex = p.extractors[constants.DocTypePAN]
	}

	rec := ex.Extract(result)
	rec.ConfidenceScore = clampScore(rec.ConfidenceScore)
	if rec.Warnings == nil {
		rec.Warnings = []string{}
	}

	p.logger.Info("pipeline.extract.ok",
		"req_id", reqID,
		"document_type", string(rec.DocumentType),
		"validation_status", string(rec.ValidationStatus),
		"confidence", rec.ConfidenceScore,
		"warnings", len(rec.Warnings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec
}
