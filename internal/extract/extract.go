// Package extract pulls plain text out of uploaded resume files.
// PDF parsing uses github.com/ledongthuc/pdf; DOCX is unpacked directly
// from the OOXML zip.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF   = "application/pdf"
	mimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePlain = "text/plain"
)

// ErrEmptyText is returned when a file parses but yields no text, for
// example a scanned PDF with no text layer.
var ErrEmptyText = errors.New("no extractable text in file")

// FromUpload extracts text from an in-memory upload. The mime type is
// normalized against the file name because browsers often send generic
// types for OOXML files.
func FromUpload(data []byte, mimeType string, fileName string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty file")
	}
	switch normalizeMimeType(mimeType, fileName, data) {
	case mimePDF:
		return fromPDF(data)
	case mimeDOCX:
		return fromDOCX(data)
	case mimePlain:
		return normalizeText(string(data))
	default:
		return "", fmt.Errorf("unsupported file type: %s (upload a PDF, DOCX or plain text resume)", mimeType)
	}
}

// fromPDF walks the pages and joins their text with newlines so section
// boundaries survive extraction.
func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, text)
		}
	}
	return normalizeText(strings.Join(pages, "\n"))
}

func fromDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}

	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		return normalizeText(stripDocxXML(string(raw)))
	}
	return "", errors.New("document.xml not found in docx")
}

// stripDocxXML flattens document.xml to text, inserting newlines at
// paragraph and line break boundaries.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return buf.String()
}

func normalizeText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

func normalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case mimePDF, mimeDOCX:
		return clean
	case "text/plain", "":
	case "application/zip", "application/octet-stream":
	default:
		return clean
	}

	// Generic or missing type: decide from the payload, then the extension.
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return mimePDF
	}
	if isDocxZip(data) {
		return mimeDOCX
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return mimePDF
	case ".docx":
		return mimeDOCX
	case ".txt", "":
		return mimePlain
	}
	if clean == "text/plain" {
		return mimePlain
	}
	return clean
}

func isDocxZip(data []byte) bool {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}
