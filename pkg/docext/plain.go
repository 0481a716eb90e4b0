package docext

import (
	"fmt"
	"unicode/utf8"
)

// extractPlain validates UTF-8 and returns the content unchanged.
func extractPlain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decode text: content is not valid UTF-8")
	}
	return string(data), nil
}
