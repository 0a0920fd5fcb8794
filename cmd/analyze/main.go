// Command analyze runs the analysis pipeline once against a local image file
// and prints the resulting text. Useful for prompt and normalization tuning
// without a database or HTTP server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mediscan-kh/mediscan/internal/imaging"
	"github.com/mediscan-kh/mediscan/internal/llm/gemini"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: analyze <image-file>")
		os.Exit(2)
	}
	if os.Getenv("GEMINI_API_KEY") == "" {
		logger.Error("GEMINI_API_KEY env var is required")
		os.Exit(2)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read file", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	if err := imaging.ValidateUpload(raw, http.DetectContentType(raw)); err != nil {
		logger.Error("validate image", "error", err)
		os.Exit(1)
	}
	canonical, err := imaging.Normalize(raw)
	if err != nil {
		logger.Error("normalize image", "error", err)
		os.Exit(1)
	}
	logger.Info("normalized", "bytes_in", len(raw), "bytes_canonical", len(canonical))

	client := gemini.NewClient(gemini.Config{
		Model:    getenv("GEMINI_MODEL", "models/gemini-1.5-pro"),
		Language: getenv("GEMINI_LANGUAGE", "Khmer"),
		Timeout:  90 * time.Second,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	text, err := client.AnalyzeImage(ctx, canonical)
	if err != nil {
		logger.Error("analyze", "error", err)
		os.Exit(1)
	}
	logger.Info("analyzed", "elapsed_ms", time.Since(start).Milliseconds())
	fmt.Println(text)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
