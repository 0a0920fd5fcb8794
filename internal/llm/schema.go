package llm

import "strings"

// BuildReportJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the provider as a structured output constraint and also use it
// locally to validate.
func BuildReportJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"summary": map[string]any{"type": "string", "minLength": 1},
			"observations": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "minLength": 1},
			},
			"concerns": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "minLength": 1},
			},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"summary", "observations"},
	}
}

// ComposeText renders a Report into the analysis text stored on the record.
func ComposeText(r Report) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(r.Summary))
	if len(r.Observations) > 0 {
		b.WriteString("\n\n")
		for _, o := range r.Observations {
			b.WriteString("- ")
			b.WriteString(strings.TrimSpace(o))
			b.WriteString("\n")
		}
	}
	if len(r.Concerns) > 0 {
		b.WriteString("\n")
		for _, c := range r.Concerns {
			b.WriteString("! ")
			b.WriteString(strings.TrimSpace(c))
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}
