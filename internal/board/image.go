package board

import (
	"encoding/base64"
	"strings"
)

// maxImageBytes is the decoded size cap for inlined images
const maxImageBytes = 2 * 1024 * 1024

// validateImage checks an attached image reference. Data URIs are size
// checked locally so an oversized payload never reaches storage; plain
// remote URLs pass through untouched.
func validateImage(imageURL string) error {
	if imageURL == "" || !strings.HasPrefix(imageURL, "data:") {
		return nil
	}

	idx := strings.Index(imageURL, ";base64,")
	if idx < 0 {
		return &ValidationError{Message: "Image invalide"}
	}
	payload := imageURL[idx+len(";base64,"):]
	if base64.StdEncoding.DecodedLen(len(payload)) > maxImageBytes {
		return &ValidationError{Message: "Image trop grande (max 2MB)"}
	}
	return nil
}
