package testsupport

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteLines writes each line followed by "\n" to path, creating parent
// directories as needed.
func WriteLines(t testing.TB, path string, lines ...string) {
	t.Helper()

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	writeFile(t, path, []byte(b.String()))
}

// WriteCatalog writes a minimal Logiqx-style dat with one <game> record per
// name, in order.
func WriteCatalog(t testing.TB, path string, names ...string) {
	t.Helper()
	WriteCatalogRecords(t, path, "game", names...)
}

// WriteCatalogRecords is WriteCatalog with a custom record element name.
func WriteCatalogRecords(t testing.TB, path, tag string, names ...string) {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString("<datafile>\n")
	buf.WriteString("\t<header>\n\t\t<name>test set</name>\n\t</header>\n")
	for _, name := range names {
		buf.WriteString("\t<" + tag + " name=\"")
		if err := xml.EscapeText(&buf, []byte(name)); err != nil {
			t.Fatalf("escape %q: %v", name, err)
		}
		buf.WriteString("\">\n\t\t<description>")
		if err := xml.EscapeText(&buf, []byte(name)); err != nil {
			t.Fatalf("escape %q: %v", name, err)
		}
		buf.WriteString("</description>\n\t</" + tag + ">\n")
	}
	buf.WriteString("</datafile>\n")
	writeFile(t, path, buf.Bytes())
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	writeFile(t, path, []byte(content))
}

func writeFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
