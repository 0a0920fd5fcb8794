package imaging

import (
	"fmt"

	filetype "gopkg.in/h2non/filetype.v1"

	"github.com/mediscan-kh/mediscan/constants"
	"github.com/mediscan-kh/mediscan/internal/common"
)

// ValidateUpload is the hard input gate at the ingestion boundary. It checks
// the declared content type against the allow-list, enforces the size ceiling,
// and sniffs the magic number so a mislabeled payload cannot slip through.
// It runs before normalization is ever attempted.
func ValidateUpload(raw []byte, declaredMIME string) error {
	mime := constants.NormalizeMIME(declaredMIME)
	if !constants.IsAllowedMIME(mime) {
		return common.ValidationError(fmt.Sprintf("unsupported content type %q: only png, jpeg, jpg and gif images are allowed", declaredMIME))
	}
	if len(raw) > constants.MaxUploadBytes {
		return common.ValidationError("file size exceeds the 4MB limit; please compress your image")
	}

	kind, err := filetype.Match(raw)
	if err != nil || kind == filetype.Unknown {
		return common.ValidationError("file content is not a recognized image")
	}
	if !constants.IsAllowedMIME(kind.MIME.Value) {
		return common.ValidationError(fmt.Sprintf("file content is %s, which is not an allowed image type", kind.MIME.Value))
	}
	return nil
}
