package summarizer

import (
	"archive/zip"
	"io"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestWriteDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lecture_summary.docx")
	d := Digest{
		Title:   "lecture",
		Model:   "base.en",
		Elapsed: 90 * time.Second,
		Parts: []string{
			"# Overview\n\nThe lecture covers **entropy**.\n---\n",
			"- first point\n1. numbered point\n",
		},
	}

	if err := WriteDocx(d, path); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	body := documentXML(t, path)
	for _, want := range []string{"lecture", "Part 1", "Part 2", "Overview", "entropy", "• first point", "1. numbered point", "base.en"} {
		if !strings.Contains(body, want) {
			t.Errorf("document does not contain %q", want)
		}
	}
	for _, unwanted := range []string{"**", "# Overview", "---"} {
		if strings.Contains(body, unwanted) {
			t.Errorf("document contains markdown marker %q", unwanted)
		}
	}
}

func TestDigestSubtitle(t *testing.T) {
	d := Digest{Model: "whisper-1", Elapsed: 3 * time.Minute, Parts: []string{"a", "b"}}
	want := "Transcribed with whisper-1 in 3.00 minutes, 2 part(s)"
	if got := d.Subtitle(); got != want {
		t.Errorf("Subtitle() = %q, want %q", got, want)
	}
}

func TestPartLines(t *testing.T) {
	got := partLines("  # Heading \n\n---\n- item\n")
	want := []string{"# Heading", "- item"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("partLines() = %q, want %q", got, want)
	}
}

func TestHeadingSize(t *testing.T) {
	tests := []struct {
		level int
		want  uint64
	}{
		{1, 14},
		{2, fontSize},
		{6, fontSize},
	}
	for _, tt := range tests {
		if got := headingSize(tt.level); got != tt.want {
			t.Errorf("headingSize(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestStripMarkers(t *testing.T) {
	got := stripMarkers("**bold** __under__ `code`")
	want := "bold under code"
	if got != want {
		t.Errorf("stripMarkers() = %q, want %q", got, want)
	}
}

func documentXML(t *testing.T, path string) string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open docx: %v", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}
	t.Fatal("word/document.xml missing")
	return ""
}
