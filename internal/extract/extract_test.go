package extract

import (
	"archive/zip"
	"bytes"
	"context"
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

func TestTextPlainPassthrough(t *testing.T) {
	got, err := Text(context.Background(), []byte("Skills: Python, SQL"), "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Skills: Python, SQL" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestTextDocxStripsMarkup(t *testing.T) {
	doc := `<?xml version="1.0"?><w:document xmlns:w="ns"><w:body>` +
		`<w:p><w:r><w:t>Experience</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Built a Flask API</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	data := buildDocx(t, doc)

	got, err := Text(context.Background(), data, mimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Experience") || !strings.Contains(got, "Built a Flask API") {
		t.Fatalf("unexpected text: %q", got)
	}
	if strings.Contains(got, "<w:") {
		t.Fatalf("markup leaked into text: %q", got)
	}
}

func TestTextZipDocxNormalizes(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body><w:p><w:t>hello</w:t></w:p></w:body></w:document>`)

	got, err := Text(context.Background(), data, "application/zip", "resume.docx")
	if err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
	if !strings.Contains(got, "hello") {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestTextPlainZipRejected(t *testing.T) {
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

	_, err = Text(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTextUnknownMimeRejected(t *testing.T) {
	_, err := Text(context.Background(), []byte("x"), "image/png", "photo.png")
	if err == nil {
		t.Fatal("expected error for image mime")
	}
}
