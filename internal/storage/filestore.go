package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Filestore is a filesystem-backed ObjectStore for local development. Objects
// land under Root and are served from BaseURL by whatever fronts that
// directory.
type Filestore struct {
	Root    string
	BaseURL string
	logger  *slog.Logger
}

func NewFilestore(root, baseURL string, logger *slog.Logger) (*Filestore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Filestore{
		Root:    root,
		BaseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

func (s *Filestore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	fullPath := filepath.Join(s.Root, key)
	f, err := os.OpenFile(fullPath, os.O_EXCL|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		s.logger.Error("storage.file.open_failed", "key", key, "error", err)
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(fullPath)
		s.logger.Error("storage.file.write_failed", "key", key, "error", err)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	s.logger.Debug("storage.file.uploaded", "key", key, "bytes", len(data))
	return s.BaseURL + "/" + key, nil
}
