package constants

import "strings"

// MaxUploadBytes is the hard ceiling for a single uploaded image.
const MaxUploadBytes = 4 << 20 // 4 MiB

// AllowedMIMETypes holds the declared content types accepted at the upload boundary.
var AllowedMIMETypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/jpg":  {},
	"image/gif":  {},
}

// IsAllowedMIME reports whether a declared content type is on the upload allow-list.
func IsAllowedMIME(mime string) bool {
	_, ok := AllowedMIMETypes[NormalizeMIME(mime)]
	return ok
}

// NormalizeMIME lowercases a content type and strips any parameters
// (e.g. "image/PNG; charset=binary" -> "image/png").
func NormalizeMIME(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	return mime
}
