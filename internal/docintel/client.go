package docintel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kaaryaa/identity-engine/internal/common"
)

// Client calls the Azure Document Intelligence REST API: submit bytes,
// follow Operation-Location, poll until the operation settles.
type Client struct {
	cfg    common.DocIntelConfig
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg common.DocIntelConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.ModelID == "" {
		cfg.ModelID = "prebuilt-idDocument"
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2023-07-31"
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 1 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	return &Client{cfg: cfg, http: httpClient, logger: logger}
}

// Analyze submits the document and blocks until the analysis operation
// completes. modelID overrides the configured model when non-empty.
func (c *Client) Analyze(ctx context.Context, content []byte, modelID string) (*AnalyzeResult, error) {
	if c.cfg.Endpoint == "" || c.cfg.Key == "" {
		return nil, common.NewAppError("DOCINTEL_CONFIG", "endpoint and key are required", common.ErrInvalidInput)
	}
	if modelID == "" {
		modelID = c.cfg.ModelID
	}

	reqID := uuid.New().String()
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	opURL, err := c.submit(ctx, reqID, modelID, content)
	if err != nil {
		return nil, fmt.Errorf("submit analyze: %w", err)
	}

	res, err := c.poll(ctx, reqID, opURL)
	if err != nil {
		return nil, fmt.Errorf("poll analyze: %w", err)
	}

	c.logger.Info("docintel.analyze.ok",
		"req_id", reqID,
		"model_id", modelID,
		"pages", len(res.Pages),
		"documents", len(res.Documents),
		"tables", len(res.Tables),
		"content_bytes", len(res.Content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (c *Client) submit(ctx context.Context, reqID, modelID string, content []byte) (string, error) {
	url := fmt.Sprintf("%s/formrecognizer/documentModels/%s:analyze?api-version=%s",
		strings.TrimRight(c.cfg.Endpoint, "/"), modelID, c.cfg.APIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.Key)

	c.logger.Info("docintel.http.request",
		"req_id", reqID, "model_id", modelID, "content_length", len(content))

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("docintel.http.send_error", "req_id", reqID, "error", err)
		return "", err
	}
	defer closeBody(resp.Body, c.logger, reqID)

	if resp.StatusCode != http.StatusAccepted {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("docintel.http.submit_rejected",
			"req_id", reqID, "status", resp.StatusCode, "body", string(raw))
		return "", fmt.Errorf("%w: submit status %d", common.ErrUpstream, resp.StatusCode)
	}

	opURL := resp.Header.Get("Operation-Location")
	if opURL == "" {
		return "", fmt.Errorf("%w: missing Operation-Location header", common.ErrUpstream)
	}
	return opURL, nil
}

func (c *Client) poll(ctx context.Context, reqID, opURL string) (*AnalyzeResult, error) {
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		op, err := c.fetchOperation(ctx, reqID, opURL)
		if err != nil {
			return nil, err
		}

		switch op.Status {
		case "succeeded":
			if op.AnalyzeResult == nil {
				return nil, fmt.Errorf("%w: succeeded without analyzeResult", common.ErrUpstream)
			}
			return op.AnalyzeResult, nil
		case "failed":
			msg := "unspecified"
			if op.Error != nil {
				msg = fmt.Sprintf("%s: %s", op.Error.Code, op.Error.Message)
			}
			return nil, fmt.Errorf("%w: %s", common.ErrUpstream, msg)
		default:
			c.logger.Debug("docintel.poll.pending",
				"req_id", reqID, "attempt", attempt, "status", op.Status)
		}
	}
}

func (c *Client) fetchOperation(ctx context.Context, reqID, opURL string) (*AnalyzeOperation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build poll request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.Key)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("docintel.poll.send_error", "req_id", reqID, "error", err)
		return nil, err
	}
	defer closeBody(resp.Body, c.logger, reqID)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read poll response: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: poll status %d", common.ErrUpstream, resp.StatusCode)
	}

	var op AnalyzeOperation
	if err := json.Unmarshal(raw, &op); err != nil {
		return nil, fmt.Errorf("decode poll response: %w", err)
	}
	return &op, nil
}

func closeBody(body io.ReadCloser, logger *slog.Logger, reqID string) {
	if err := body.Close(); err != nil {
		logger.Warn("docintel.http.response_body_close_error", "req_id", reqID, "error", err)
	}
}
