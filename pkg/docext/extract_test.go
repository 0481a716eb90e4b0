package docext

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "slides.pptx", want: FormatPPTX},
		{path: "SLIDES.PPTX", want: FormatPPTX},
		{path: "paper.pdf", want: FormatPDF},
		{path: "report.docx", want: FormatDOCX},
		{path: "notes.txt", want: FormatPlain},
		{path: "readme.md", want: FormatPlain},
		{path: "archive.tar.gz", want: FormatUnknown},
		{path: "noext", want: FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.path))
		})
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := Extract("document.xyz")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExtractPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("Plain text content.\n"), 0o644))

	text, err := Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "Plain text content.\n", text)
}

func TestExtractEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("  \n\t\n"), 0o644))

	_, err := Extract(path)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractPlainRejectsInvalidUTF8(t *testing.T) {
	_, err := ExtractBytes([]byte{0xff, 0xfe, 0x00}, FormatPlain)
	assert.Error(t, err)
}

// zipFixture builds an in-memory zip archive from name->content pairs.
func zipFixture(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range parts {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

const slideXML = `<?xml version="1.0"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
       xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld><p:spTree><p:sp><p:txBody>
    <a:p><a:r><a:t>%s</a:t></a:r></a:p>
  </p:txBody></p:sp></p:spTree></p:cSld>
</p:sld>`

func slidePart(text string) string {
	return fmt.Sprintf(slideXML, text)
}

func TestExtractPPTXSlideOrder(t *testing.T) {
	// Slide 10 must sort after slide 2 numerically, not lexically.
	data := zipFixture(t, map[string]string{
		"ppt/slides/slide10.xml": slidePart("Third slide."),
		"ppt/slides/slide1.xml":  slidePart("First slide."),
		"ppt/slides/slide2.xml":  slidePart("Second slide."),
		"ppt/presentation.xml":   `<p:presentation xmlns:p="x"/>`,
	})

	text, err := ExtractBytes(data, FormatPPTX)
	require.NoError(t, err)
	assert.Equal(t, "First slide.\nSecond slide.\nThird slide.\n", text)
}

func TestExtractPPTXEmpty(t *testing.T) {
	data := zipFixture(t, map[string]string{
		"ppt/slides/slide1.xml": slidePart(" "),
	})
	_, err := ExtractBytes(data, FormatPPTX)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractPPTXNotAZip(t *testing.T) {
	_, err := ExtractBytes([]byte("not a zip archive"), FormatPPTX)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractDOCX(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`
	data := zipFixture(t, map[string]string{
		"word/document.xml": doc,
		"word/styles.xml":   `<w:styles xmlns:w="x"/>`,
	})

	text, err := ExtractBytes(data, FormatDOCX)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\nSecond paragraph.", text)
}

func TestExtractDOCXMissingDocumentPart(t *testing.T) {
	data := zipFixture(t, map[string]string{
		"word/styles.xml": `<w:styles xmlns:w="x"/>`,
	})
	_, err := ExtractBytes(data, FormatDOCX)
	assert.Error(t, err)
}
