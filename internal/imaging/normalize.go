// Package imaging derives the canonical artifact from raw upload bytes:
// validated, downsampled to a bounding box, and re-encoded as JPEG.
package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/mediscan-kh/mediscan/internal/common"
)

const (
	// MaxDimension is the side of the square bounding box the canonical
	// artifact must fit inside. Aspect ratio is preserved, never upscaled.
	MaxDimension = 800
	// JPEGQuality is the fixed quality target of the canonical encoding.
	JPEGQuality = 70
)

// CanonicalMIME is the content type of every normalized artifact.
const CanonicalMIME = "image/jpeg"

// Normalize deterministically transforms raw upload bytes into the canonical
// encoding: decoded, scaled to fit MaxDimension×MaxDimension without
// enlargement, and re-encoded as JPEG at JPEGQuality. Decode failures surface
// as a normalization error and must abort ingestion.
func Normalize(raw []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, common.NormalizationError(err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	tw, th := fitWithin(w, h, MaxDimension)

	var canonical image.Image = src
	if tw != w || th != h {
		dst := image.NewRGBA(image.Rect(0, 0, tw, th))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
		canonical = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canonical, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, common.NormalizationError(err)
	}
	return buf.Bytes(), nil
}

// fitWithin scales (w, h) to fit inside a max×max box preserving aspect
// ratio. Images already inside the box keep their dimensions.
func fitWithin(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w >= h {
		th := h * max / w
		if th < 1 {
			th = 1
		}
		return max, th
	}
	tw := w * max / h
	if tw < 1 {
		tw = 1
	}
	return tw, max
}
