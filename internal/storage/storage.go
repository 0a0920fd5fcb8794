// Package storage hands normalized artifacts off to durable blob storage
// reachable by URL.
package storage

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectStore is the durable blob storage collaborator.
type ObjectStore interface {
	// Upload stores data under key with the given content type and returns
	// the public URL the object is reachable at.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ObjectKey builds a fresh, collision-resistant key for an upload: a random
// identifier plus a sanitized suffix of the original name, always with the
// canonical .jpg extension.
func ObjectKey(originalName string) string {
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	base = sanitizeName(base)
	if base == "" {
		base = "image"
	}
	return uuid.New().String() + "-" + base + ".jpg"
}

func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-.")
	if len(out) > 64 {
		out = out[:64]
	}
	return out
}
