package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestFromUpload_Docx(t *testing.T) {
	doc := `<?xml version="1.0"?><w:document xmlns:w="ns"><w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	data := buildDocx(t, doc)

	text, err := FromUpload(data, mimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("FromUpload: %v", err)
	}
	if !strings.Contains(text, "Jane Doe") || !strings.Contains(text, "Software Engineer") {
		t.Fatalf("unexpected text: %q", text)
	}
	if !strings.Contains(text, "Jane Doe\n") {
		t.Fatalf("expected paragraph break after name: %q", text)
	}
}

func TestFromUpload_DocxFromZipMime(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body><w:p><w:t>hi</w:t></w:p></w:body></w:document>`)
	if _, err := FromUpload(data, "application/zip", "resume.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestFromUpload_PlainText(t *testing.T) {
	text, err := FromUpload([]byte("  plain resume text\n"), "text/plain", "resume.txt")
	if err != nil {
		t.Fatalf("FromUpload: %v", err)
	}
	if text != "plain resume text" {
		t.Fatalf("got %q", text)
	}
}

func TestFromUpload_OctetStreamSniffsPDFHeader(t *testing.T) {
	// Truncated payload: sniffing should still route it to the PDF parser,
	// which then fails to read it.
	_, err := FromUpload([]byte("%PDF-1.4 not really"), "application/octet-stream", "upload.bin")
	if err == nil || !strings.Contains(err.Error(), "read pdf") {
		t.Fatalf("expected pdf parse error, got %v", err)
	}
}

func TestFromUpload_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	if _, err := FromUpload(buf.Bytes(), "application/zip", "notes.zip"); err == nil {
		t.Fatal("expected unsupported type error for plain zip")
	}
}

func TestFromUpload_Empty(t *testing.T) {
	if _, err := FromUpload(nil, "application/pdf", "resume.pdf"); err == nil {
		t.Fatal("expected error for empty file")
	}
}
