package urllist

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"datclean/internal/normalize"
)

func TestReadLinesTrimsDedupesAndSkipsEmpty(t *testing.T) {
	input := "http://a/Foo.zip  \r\n\n   \nhttp://b/Bar.zip\nhttp://a/Foo.zip\n  http://c/Lead.zip\nhttp://d/NoNewline.zip"
	got, err := ReadLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadLines returned error: %v", err)
	}
	want := []string{
		"http://a/Foo.zip",
		"http://b/Bar.zip",
		"  http://c/Lead.zip",
		"http://d/NoNewline.zip",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ReadLines = %q, want %q", got, want)
	}
}

func TestReadLinesDedupIsPreNormalization(t *testing.T) {
	got, err := ReadLines(strings.NewReader("http://a/Foo%20Bar.zip\nhttp://a/foo bar.zip\n"))
	if err != nil {
		t.Fatalf("ReadLines returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both encodings kept, got %q", got)
	}
}

func TestReadLinesEmptyInput(t *testing.T) {
	got, err := ReadLines(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadLines returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestLoadLinesMissingFile(t *testing.T) {
	_, err := LoadLines(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		path   string
		format string
		want   string
	}{
		{"list.txt", "", FormatLines},
		{"list.txt", "auto", FormatLines},
		{"listing.HTML", "auto", FormatHTML},
		{"listing.htm", "", FormatHTML},
		{"listing.html", "lines", FormatLines},
		{"urls.txt", " HTML ", FormatHTML},
	}
	for _, tt := range tests {
		if got := ResolveFormat(tt.path, tt.format); got != tt.want {
			t.Errorf("ResolveFormat(%q, %q) = %q, want %q", tt.path, tt.format, got, tt.want)
		}
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	if err := os.WriteFile(path, []byte("http://a/x.zip\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path, "csv", ""); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

const listing = `<!DOCTYPE html>
<html><body>
<table id="list">
<tr><td><a href="../">Parent directory/</a></td></tr>
<tr><td><a href="#top">top</a></td></tr>
<tr><td><a href="?C=N&amp;O=D">File Name</a></td></tr>
<tr><td><a href="Game%202%20(USA).zip">Game 2 (USA).zip</a></td></tr>
<tr><td><a href="Game%20(USA).zip">Game (USA).zip</a></td></tr>
<tr><td><a href="Game%20(USA).zip">Game (USA).zip</a></td></tr>
<tr><td><a>no href</a></td></tr>
<tr><td><a href="javascript:void(0)">js</a></td></tr>
<tr><td><a href="https://other.example/abs.7z">abs</a></td></tr>
</table>
</body></html>`

func TestReadHTMLWithoutBase(t *testing.T) {
	got, err := ReadHTML(strings.NewReader(listing), "")
	if err != nil {
		t.Fatalf("ReadHTML returned error: %v", err)
	}
	want := []string{
		"Game%202%20(USA).zip",
		"Game%20(USA).zip",
		"https://other.example/abs.7z",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ReadHTML = %q, want %q", got, want)
	}
}

func TestReadHTMLResolvesAgainstBase(t *testing.T) {
	got, err := ReadHTML(strings.NewReader(listing), "https://files.example/PS2/")
	if err != nil {
		t.Fatalf("ReadHTML returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ReadHTML = %q, want 3 entries", got)
	}
	wantNames := []string{"game 2 (usa).zip", "game (usa).zip"}
	for i, name := range wantNames {
		if !strings.HasPrefix(got[i], "https://files.example/PS2/") {
			t.Fatalf("entry %d not resolved against base: %q", i, got[i])
		}
		if decoded := normalize.URL(got[i]); !strings.HasSuffix(decoded, "/ps2/"+name) {
			t.Fatalf("entry %d decodes to %q, want suffix %q", i, decoded, name)
		}
	}
	if got[2] != "https://other.example/abs.7z" {
		t.Fatalf("absolute link rewritten: %q", got[2])
	}
}

func TestLoadDispatchesHTMLByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing.html")
	if err := os.WriteFile(path, []byte(listing), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load(path, FormatAuto, "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 links, got %q", got)
	}
}
