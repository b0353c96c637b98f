package urllist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Supported input formats.
const (
	FormatAuto  = "auto"
	FormatLines = "lines"
	FormatHTML  = "html"
)

// Load reads path using the requested format. FormatAuto picks HTML for
// .html/.htm files and the line format for everything else. base is only
// consulted for HTML input.
func Load(path, format, base string) ([]string, error) {
	switch ResolveFormat(path, format) {
	case FormatHTML:
		return LoadHTML(path, base)
	case FormatLines:
		return LoadLines(path)
	default:
		return nil, fmt.Errorf("url list format: unsupported value %q", format)
	}
}

// ResolveFormat maps FormatAuto to a concrete format for path.
func ResolveFormat(path, format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "" && format != FormatAuto {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatLines
	}
}

// LoadLines reads a newline-delimited URL list.
func LoadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open url list: %w", err)
	}
	defer file.Close()

	urls, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("read url list %s: %w", path, err)
	}
	return urls, nil
}

// ReadLines splits r into trailing-whitespace-trimmed, non-empty, unique lines.
func ReadLines(r io.Reader) ([]string, error) {
	var d dedup
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			d.add(strings.TrimRightFunc(line, unicode.IsSpace))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return d.values(), nil
}

type dedup struct {
	seen  map[string]struct{}
	items []string
}

func (d *dedup) add(value string) bool {
	if value == "" {
		return false
	}
	if d.seen == nil {
		d.seen = make(map[string]struct{}, 256)
	}
	if _, ok := d.seen[value]; ok {
		return false
	}
	d.seen[value] = struct{}{}
	d.items = append(d.items, value)
	return true
}

func (d *dedup) values() []string {
	if d.items == nil {
		return []string{}
	}
	return d.items
}
