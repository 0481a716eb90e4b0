// Package docext extracts plain text from document files. Parsing of the
// binary formats is delegated to format-specific decoders; callers get back a
// single text string or a terminal error.
package docext

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"docsum/pkg/texttool"
)

var (
	// ErrUnsupportedFormat is returned when the file extension is not a
	// recognized document type.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrEmptyDocument is returned when extraction succeeds but yields no
	// text. An empty document is a failure, not a vacuous success.
	ErrEmptyDocument = errors.New("document contains no extractable text")
)

// Format identifies a supported document type.
type Format int

const (
	FormatUnknown Format = iota
	FormatPDF
	FormatPPTX
	FormatDOCX
	FormatPlain
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatPPTX:
		return "pptx"
	case FormatDOCX:
		return "docx"
	case FormatPlain:
		return "plain"
	default:
		return "unknown"
	}
}

// SupportedExtensions lists the file extensions Extract accepts, with the
// leading dot.
func SupportedExtensions() []string {
	return []string{".pdf", ".pptx", ".docx", ".txt", ".md"}
}

// DetectFormat maps a file path to its Format by extension.
// Unrecognized extensions map to FormatUnknown.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".pptx":
		return FormatPPTX
	case ".docx":
		return FormatDOCX
	case ".txt", ".md":
		return FormatPlain
	default:
		return FormatUnknown
	}
}

// Extract reads the file at path and returns its text content,
// NFC-normalized. The file handle is held only for the duration of the call.
func Extract(path string) (string, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return ExtractBytes(data, format)
}

// ExtractBytes extracts text from in-memory document content.
func ExtractBytes(data []byte, format Format) (string, error) {
	var (
		text string
		err  error
	)
	switch format {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatPPTX:
		text, err = extractPPTX(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	case FormatPlain:
		text, err = extractPlain(data)
	default:
		return "", ErrUnsupportedFormat
	}
	if err != nil {
		return "", err
	}
	text = texttool.Normalize(text)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}
