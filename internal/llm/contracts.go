// Package llm defines the analysis capability boundary: given image bytes,
// produce descriptive text or fail. Providers live in subpackages.
package llm

import "context"

// Analyzer is the opaque analysis capability. Latency and availability are
// not under this system's control; callers own timeouts via ctx.
type Analyzer interface {
	AnalyzeImage(ctx context.Context, jpegBytes []byte) (string, error)
}

// Report is the structured output requested from the provider before it is
// composed into the stored analysis text.
type Report struct {
	Summary      string   `json:"summary"`
	Observations []string `json:"observations"`
	Concerns     []string `json:"concerns"`
	Confidence   float64  `json:"confidence"`
}
