package gemini

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mediscan-kh/mediscan/internal/common"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func generateContentResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"parts": []map[string]any{
						{"text": text},
					},
				},
			},
		},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: ts.URL,
		Model:   "models/gemini-1.5-pro",
	}, testLogger())
}

func TestAnalyzeImage_ComposesReport(t *testing.T) {
	report := `{"summary":"Chest X-ray, PA view.","observations":["Clear lung fields","No effusion"],"concerns":["Slight cardiomegaly"],"confidence":0.85}`

	var gotPath, gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Contains(t, body, "contents")
		require.Contains(t, body, "generationConfig")

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(generateContentResponse(report)))
	})

	text, err := client.AnalyzeImage(context.Background(), []byte("jpeg-bytes"))
	require.NoError(t, err)

	require.Equal(t, "/v1beta/models/gemini-1.5-pro:generateContent", gotPath)
	require.Equal(t, "test-key", gotKey)
	require.Contains(t, text, "Chest X-ray, PA view.")
	require.Contains(t, text, "- Clear lung fields")
	require.Contains(t, text, "- No effusion")
	require.Contains(t, text, "! Slight cardiomegaly")
}

func TestAnalyzeImage_RejectsNonJSONPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(generateContentResponse("I am not JSON at all"))
	})

	_, err := client.AnalyzeImage(context.Background(), []byte("jpeg-bytes"))
	require.ErrorIs(t, err, common.ErrAnalysis)
}

func TestAnalyzeImage_RejectsMissingRequiredFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(generateContentResponse(`{"summary":"no observations field"}`))
	})

	_, err := client.AnalyzeImage(context.Background(), []byte("jpeg-bytes"))
	require.ErrorIs(t, err, common.ErrAnalysis)
}

func TestAnalyzeImage_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.AnalyzeImage(context.Background(), []byte("jpeg-bytes"))
	require.ErrorIs(t, err, common.ErrAnalysis)
}

func TestAnalyzeImage_NoCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.AnalyzeImage(context.Background(), []byte("jpeg-bytes"))
	require.ErrorIs(t, err, common.ErrAnalysis)
}

func TestBuildPrompt_MentionsLanguage(t *testing.T) {
	p := buildPrompt("Khmer")
	require.Contains(t, p, "Khmer")
	require.Contains(t, p, "ONLY JSON")
}
