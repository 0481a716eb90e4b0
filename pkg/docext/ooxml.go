package docext

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Both PPTX and DOCX are zip archives of XML parts. Visible text lives in
// <a:t>/<w:t> run elements; paragraph boundaries come from <a:p>/<w:p>.

var slidePartRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// extractPPTX pulls the text of every slide, in numeric slide order.
func extractPPTX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("decode pptx: %w", err)
	}

	type slide struct {
		num  int
		file *zip.File
	}
	var slides []slide
	for _, f := range archive.File {
		m := slidePartRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slide{num: n, file: f})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	var out strings.Builder
	for _, s := range slides {
		text, err := partText(s.file)
		if err != nil {
			return "", fmt.Errorf("decode pptx slide %d: %w", s.num, err)
		}
		if text != "" {
			out.WriteString(text)
			out.WriteString("\n")
		}
	}
	return out.String(), nil
}

// extractDOCX pulls the body text of the main document part.
func extractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("decode docx: %w", err)
	}
	for _, f := range archive.File {
		if f.Name != "word/document.xml" {
			continue
		}
		text, err := partText(f)
		if err != nil {
			return "", fmt.Errorf("decode docx: %w", err)
		}
		return text, nil
	}
	return "", fmt.Errorf("decode docx: missing word/document.xml")
}

// partText streams one XML part and collects the character data of its text
// runs. Each closed paragraph becomes a line.
func partText(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var out strings.Builder
	var line strings.Builder
	inRun := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				if s := strings.TrimSpace(line.String()); s != "" {
					out.WriteString(s)
					out.WriteString("\n")
				}
				line.Reset()
			}
		case xml.CharData:
			if inRun {
				line.Write(t)
			}
		}
	}
	if s := strings.TrimSpace(line.String()); s != "" {
		out.WriteString(s)
		out.WriteString("\n")
	}
	return strings.TrimRight(out.String(), "\n"), nil
}
