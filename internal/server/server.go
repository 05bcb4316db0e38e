package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/common"
	"github.com/kaaryaa/identity-engine/internal/docintel"
	"github.com/kaaryaa/identity-engine/internal/extract"
)

// Server is the HTTP transport: multipart upload in, identity record out.
// The analyzer call is the only fallible step; the pipeline itself always
// yields a record.
type Server struct {
	cfg      common.ServerConfig
	analyzer docintel.DocumentAnalyzer
	pipeline *extract.Pipeline
	schema   map[string]any
	logger   *slog.Logger
}

func NewServer(cfg common.ServerConfig, analyzer docintel.DocumentAnalyzer, pipeline *extract.Pipeline, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = 20 << 20
	}
	return &Server{
		cfg:      cfg,
		analyzer: analyzer,
		pipeline: pipeline,
		schema:   extract.BuildRecordJSONSchema(),
		logger:   logger,
	}
}

// Routes wires the handler set onto a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /extract/identity", s.handleExtractIdentity)
	return mux
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "identity engine is online",
		"status":  "ok",
	})
}

func (s *Server) handleExtractIdentity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := uuid.New().String()
	ctx := common.WithRequestID(r.Context(), reqID)

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadSize); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("parse multipart form: %v", err))
		return
	}

	declared, err := constants.ParseDocType(r.FormValue("doc_type"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "form field 'file' is required")
		return
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			s.logger.Warn("server.upload_close_error", "req_id", reqID, "error", cerr)
		}
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("read upload: %v", err))
		return
	}

	s.logger.Info("server.extract.start",
		"req_id", reqID,
		"filename", header.Filename,
		"bytes", len(content),
		"declared_type", string(declared),
	)

	result, err := s.analyzer.Analyze(ctx, content, "")
	if err != nil {
		// Upstream failure is fatal for the request: no partial record.
		s.logger.Error("server.analyze_failed", "req_id", reqID, "error", err)
		status := http.StatusBadGateway
		if errors.Is(err, common.ErrInvalidInput) {
			status = http.StatusInternalServerError
		}
		s.writeError(w, status, "document analysis failed")
		return
	}

	rec := s.pipeline.Run(ctx, result, declared)

	body, err := json.Marshal(rec)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "encode record")
		return
	}
	if err := extract.ValidateRecordJSON(s.schema, body); err != nil {
		s.logger.Error("server.record_schema_violation", "req_id", reqID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "record failed schema validation")
		return
	}

	s.logger.Info("server.extract.ok",
		"req_id", reqID,
		"document_type", string(rec.DocumentType),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		s.logger.Warn("server.write_response_error", "req_id", reqID, "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("server.write_json_error", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
