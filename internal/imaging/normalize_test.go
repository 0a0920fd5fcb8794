package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mediscan-kh/mediscan/constants"
	"github.com/mediscan-kh/mediscan/internal/common"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeJPEG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestNormalize_ShrinksToBoundingBox(t *testing.T) {
	out, err := Normalize(pngBytes(t, 1000, 1000))
	require.NoError(t, err)

	got := decodeJPEG(t, out).Bounds()
	require.Equal(t, MaxDimension, got.Dx())
	require.Equal(t, MaxDimension, got.Dy())
}

func TestNormalize_PreservesAspectRatio(t *testing.T) {
	out, err := Normalize(pngBytes(t, 1600, 800))
	require.NoError(t, err)

	got := decodeJPEG(t, out).Bounds()
	require.Equal(t, MaxDimension, got.Dx())
	require.Equal(t, 400, got.Dy())
}

func TestNormalize_NeverUpscales(t *testing.T) {
	out, err := Normalize(pngBytes(t, 300, 200))
	require.NoError(t, err)

	got := decodeJPEG(t, out).Bounds()
	require.Equal(t, 300, got.Dx())
	require.Equal(t, 200, got.Dy())
}

func TestNormalize_CanonicalOutputIsStable(t *testing.T) {
	// normalizing an already-canonical artifact must not change dimensions
	first, err := Normalize(pngBytes(t, 1200, 900))
	require.NoError(t, err)
	second, err := Normalize(first)
	require.NoError(t, err)

	require.Equal(t, decodeJPEG(t, first).Bounds(), decodeJPEG(t, second).Bounds())
}

func TestNormalize_RejectsUndecodableBytes(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"))
	require.Error(t, err)
	require.ErrorIs(t, err, common.ErrNormalization)
}

func TestFitWithin(t *testing.T) {
	cases := []struct {
		w, h, max, ew, eh int
	}{
		{1000, 1000, 800, 800, 800},
		{1600, 800, 800, 800, 400},
		{800, 1600, 800, 400, 800},
		{300, 200, 800, 300, 200},
		{800, 800, 800, 800, 800},
		{100000, 10, 800, 800, 1},
	}
	for _, tc := range cases {
		w, h := fitWithin(tc.w, tc.h, tc.max)
		require.Equal(t, tc.ew, w, "width for %dx%d", tc.w, tc.h)
		require.Equal(t, tc.eh, h, "height for %dx%d", tc.w, tc.h)
	}
}

func TestValidateUpload_AllowsDeclaredTypes(t *testing.T) {
	payload := pngBytes(t, 10, 10)
	for _, mime := range []string{"image/png", "image/PNG", "image/png; charset=binary"} {
		require.NoError(t, ValidateUpload(payload, mime), "mime %q", mime)
	}
}

func TestValidateUpload_RejectsUnsupportedDeclaredType(t *testing.T) {
	err := ValidateUpload(pngBytes(t, 10, 10), "application/pdf")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestValidateUpload_RejectsOversizedPayload(t *testing.T) {
	big := make([]byte, constants.MaxUploadBytes+1)
	err := ValidateUpload(big, "image/png")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestValidateUpload_RejectsMislabeledContent(t *testing.T) {
	// declared type is allowed but the payload is not an image at all
	err := ValidateUpload([]byte("%PDF-1.4 not an image"), "image/png")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestValidateUpload_SniffedTypeMustBeAllowed(t *testing.T) {
	// a real image of an allowed kind passes even if the header lies about
	// which allowed kind it is
	jpg := func() []byte {
		var buf bytes.Buffer
		require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4)), nil))
		return buf.Bytes()
	}()
	require.NoError(t, ValidateUpload(jpg, "image/png"))
}
