package llm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildReportJSONSchema()

	require.NoError(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"summary":"ok","observations":["a"],"concerns":[],"confidence":0.5}`)))

	// required fields
	require.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"summary":"ok"}`)))
	require.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"observations":[]}`)))

	// bounds and types
	require.Error(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"summary":"ok","observations":["a"],"confidence":1.5}`)))
	require.Error(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"summary":"ok","observations":"not an array"}`)))
	require.Error(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"summary":"ok","observations":["a"],"extra":true}`)))
}

func TestComposeText(t *testing.T) {
	text := ComposeText(Report{
		Summary:      "  Chest X-ray, PA view.  ",
		Observations: []string{"Clear lung fields", "No effusion"},
		Concerns:     []string{"Slight cardiomegaly"},
		Confidence:   0.85,
	})

	require.Equal(t,
		"Chest X-ray, PA view.\n\n- Clear lung fields\n- No effusion\n\n! Slight cardiomegaly",
		text)
}

func TestComposeText_SummaryOnly(t *testing.T) {
	require.Equal(t, "Nothing to report.", ComposeText(Report{Summary: "Nothing to report."}))
}
