package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mediscan-kh/mediscan/internal/common"
	"github.com/mediscan-kh/mediscan/internal/imaging"
	"github.com/mediscan-kh/mediscan/internal/llm"
)

// AnalyzeImage implements llm.Analyzer against the generateContent endpoint.
// The image travels inline as base64 JPEG; the response is requested as
// structured JSON and validated before being composed into the stored text.
func (c *Client) AnalyzeImage(ctx context.Context, jpegBytes []byte) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.analyze.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"image_bytes", len(jpegBytes),
		"language", c.cfg.Language,
	)

	schema := llm.BuildReportJSONSchema()
	body := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{
						"inline_data": map[string]any{
							"mime_type": imaging.CanonicalMIME,
							"data":      base64.StdEncoding.EncodeToString(jpegBytes),
						},
					},
					{"text": buildPrompt(c.cfg.Language)},
				},
			},
		},
		"generationConfig": map[string]any{
			"response_mime_type": "application/json",
		},
	}

	endpoint := fmt.Sprintf("%s/v1beta/%s:generateContent",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)
	headers := map[string]string{"x-goog-api-key": c.cfg.APIKey}

	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		c.logger.Error("llm.analyze.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", errors.Join(common.ErrAnalysis, err)
	}

	var gc struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &gc); err != nil {
		c.logger.Error("llm.analyze.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", errors.Join(common.ErrAnalysis, fmt.Errorf("decode gemini response: %w", err))
	}
	if len(gc.Candidates) == 0 || len(gc.Candidates[0].Content.Parts) == 0 {
		c.logger.Error("llm.analyze.no_candidates",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", errors.Join(common.ErrAnalysis, errors.New("no candidates in gemini response"))
	}

	var sb strings.Builder
	for _, p := range gc.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	content := []byte(strings.TrimSpace(sb.String()))

	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		c.logger.Error("llm.analyze.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", errors.Join(common.ErrAnalysis, err)
	}

	var report llm.Report
	if err := json.Unmarshal(content, &report); err != nil {
		return "", errors.Join(common.ErrAnalysis, fmt.Errorf("decode report: %w", err))
	}

	text := llm.ComposeText(report)
	c.logger.Info("llm.analyze.success",
		"req_id", rid,
		"observations", len(report.Observations),
		"concerns", len(report.Concerns),
		"confidence", report.Confidence,
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

func buildPrompt(language string) string {
	var b strings.Builder
	b.WriteString("Analyze only medical images and provide detailed observations about what you see, ")
	b.WriteString("including any potential abnormalities or areas of concern. ")
	b.WriteString("If the image is any other document or picture, set the summary to an apology that ")
	b.WriteString("you cannot see a medical image and leave observations empty. ")
	fmt.Fprintf(&b, "Write every field in the %s language. ", language)
	b.WriteString("Return ONLY JSON with the fields: summary (string), observations (array of strings), ")
	b.WriteString("concerns (array of strings), confidence (number between 0 and 1).")
	return b.String()
}
