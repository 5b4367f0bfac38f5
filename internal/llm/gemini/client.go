package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"btp-catalogue/constants"
	"btp-catalogue/internal/catalog"
	"btp-catalogue/internal/common"
	"btp-catalogue/internal/extract"
	"btp-catalogue/internal/llm"
)

// ExtractInvoice implements llm.FieldExtractor against generateContent.
// The response is schema-validated, then each product line goes through the
// catalogue normalizer independently; lines that fail normalization are
// dropped with a warning rather than failing the whole invoice.
func (c *Client) ExtractInvoice(ctx context.Context, req llm.ExtractRequest) (*extract.Result, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Infow("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"mime", req.MimeType,
		"file_bytes", len(req.FileBytes),
		"text_len", len(req.OCRText),
		"filename", req.FilenameHint,
	)

	familles := constants.FamillesAsStringSlice()
	schema := llm.BuildInvoiceJSONSchema(familles)
	body := c.buildRequestBody(req, schema, familles)

	raw, err := c.postWithRetry(ctx, rid, body)
	if err != nil {
		c.log.Errorw("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	content, usage, err := decodeGenerateContent(raw)
	if err != nil {
		c.log.Errorw("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}
	content = stripFences(content)

	if err := llm.ValidateJSONAgainstSchema(schema, []byte(content)); err != nil {
		c.log.Errorw("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", content,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var env llm.InvoiceEnvelope
	if err := json.Unmarshal([]byte(content), &env); err != nil {
		c.log.Errorw("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("unmarshal invoice envelope: %w", err)
	}

	products := make([]catalog.Product, 0, len(env.Products))
	dropped := 0
	for i, line := range env.Products {
		// Header fields flow down to lines that did not repeat them.
		if catalog.CoerceString(line["fournisseur"]) == "" {
			line["fournisseur"] = env.Fournisseur
		}
		if catalog.CoerceString(line["numero_facture"]) == "" {
			line["numero_facture"] = env.NumeroFacture
		}
		if catalog.CoerceString(line["date_facture"]) == "" {
			line["date_facture"] = env.DateFacture
		}
		p, nErr := catalog.Normalize(line)
		if nErr != nil {
			dropped++
			c.log.Warnw("llm.extract.line_dropped",
				"req_id", rid, "line", i, "error", nErr)
			continue
		}
		products = append(products, p)
	}

	c.log.Infow("llm.extract.ok",
		"req_id", rid,
		"fournisseur", env.Fournisseur,
		"numero_facture", env.NumeroFacture,
		"lines", len(env.Products),
		"products", len(products),
		"dropped", dropped,
		"prompt_tokens", usage.PromptTokens,
		"output_tokens", usage.OutputTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return &extract.Result{
		Products:      products,
		Fournisseur:   env.Fournisseur,
		NumeroFacture: env.NumeroFacture,
		DateFacture:   env.DateFacture,
		Langue:        env.Langue,
		RawLineCount:  len(env.Products),
		Usage:         usage,
	}, nil
}

func (c *Client) buildRequestBody(req llm.ExtractRequest, schema map[string]any, familles []string) map[string]any {
	sys := llm.BuildSystemPrompt(familles)

	var parts []map[string]any
	if req.OCRText != "" {
		parts = append(parts, map[string]any{
			"text": llm.BuildTextPrompt(req.OCRText, req.FilenameHint),
		})
	} else {
		parts = append(parts,
			map[string]any{"inline_data": map[string]any{
				"mime_type": req.MimeType,
				"data":      base64.StdEncoding.EncodeToString(req.FileBytes),
			}},
			map[string]any{"text": "Extract all product lines from this invoice."},
		)
	}
	parts = append(parts, map[string]any{"text": "JSON Schema:\n" + mustJSON(schema)})

	return map[string]any{
		"system_instruction": map[string]any{
			"parts": []map[string]any{{"text": sys}},
		},
		"contents": []map[string]any{
			{"role": "user", "parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature":        c.cfg.Temperature,
			"response_mime_type": "application/json",
		},
	}
}

// postWithRetry sends the request, backing off and retrying only on quota
// exhaustion. Auth failures and timeouts map to their sentinel errors.
func (c *Client) postWithRetry(ctx context.Context, rid string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") +
		"/v1beta/models/" + c.cfg.Model + ":generateContent"

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		raw, status, err := c.post(ctx, endpoint, b)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
				return nil, common.NewAppError("PROVIDER_TIMEOUT", "gemini request timed out", common.ErrProviderTimeout)
			}
			return nil, err
		}

		switch {
		case status >= 200 && status < 300:
			return raw, nil
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return nil, common.NewAppError("PROVIDER_AUTH", "gemini rejected the API key", common.ErrInvalidCredentials)
		case status == http.StatusTooManyRequests || bytes.Contains(raw, []byte("RESOURCE_EXHAUSTED")):
			lastErr = common.NewAppError("RATE_LIMITED",
				fmt.Sprintf("gemini quota exhausted (status %d)", status), common.ErrRateLimited)
			if attempt == c.cfg.MaxAttempts {
				return nil, lastErr
			}
			delay := c.cfg.RetryBase << (attempt - 1)
			c.log.Warnw("llm.extract.rate_limited",
				"req_id", rid, "attempt", attempt, "retry_in", delay.String())
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		default:
			return nil, fmt.Errorf("gemini status %d: %s", status, string(raw))
		}
	}
	return nil, lastErr
}

func (c *Client) post(ctx context.Context, url string, body []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("gemini http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cErr := body.Close(); cErr != nil {
			c.log.Warnw("gemini response body close error", "error", cErr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read gemini response: %w", err)
	}
	return buf.Bytes(), resp.StatusCode, nil
}

func decodeGenerateContent(raw []byte) (string, extract.TokenUsage, error) {
	var gc struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
		UsageMetadata struct {
			PromptTokenCount     int `json:"promptTokenCount"`
			CandidatesTokenCount int `json:"candidatesTokenCount"`
			TotalTokenCount      int `json:"totalTokenCount"`
		} `json:"usageMetadata"`
	}
	if err := json.Unmarshal(raw, &gc); err != nil {
		return "", extract.TokenUsage{}, fmt.Errorf("decode gemini response: %w", err)
	}
	if len(gc.Candidates) == 0 {
		return "", extract.TokenUsage{}, fmt.Errorf("no candidates in gemini response")
	}
	var b strings.Builder
	for _, p := range gc.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	usage := extract.TokenUsage{
		PromptTokens: gc.UsageMetadata.PromptTokenCount,
		OutputTokens: gc.UsageMetadata.CandidatesTokenCount,
		TotalTokens:  gc.UsageMetadata.TotalTokenCount,
	}
	return strings.TrimSpace(b.String()), usage, nil
}

// stripFences removes a leading ```json / trailing ``` wrapper when the model
// ignores the json mime type and answers in markdown anyway.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
