package catalog

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/net/html/charset"
)

// DefaultRecordTags lists the element names treated as catalog records when
// the caller does not supply any.
var DefaultRecordTags = []string{"game"}

// ErrNoEntries reports a well-formed catalog that contained no usable records.
// Load returns it together with an empty (non-nil) slice so callers can treat
// the run as degenerate rather than fatal.
var ErrNoEntries = errors.New("catalog contains no entry records")

// ParseError wraps a failure to parse the catalog markup.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse catalog %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Stats describes what Decode saw while reading a catalog.
type Stats struct {
	Records    int
	Duplicates int
	Unnamed    int
}

// Load opens path and decodes its entry names.
func Load(path string, recordTags []string) ([]string, Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	names, stats, err := Decode(file, recordTags)
	var perr *ParseError
	if errors.As(err, &perr) {
		perr.Path = path
	}
	return names, stats, err
}

// Decode reads catalog markup from r.
func Decode(r io.Reader, recordTags []string) ([]string, Stats, error) {
	tags := tagSet(recordTags)
	decoder := xml.NewDecoder(r)
	decoder.Strict = true
	// Older dats declare ISO-8859-1 or windows-1252.
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		names   = make([]string, 0, 256)
		seen    = make(map[string]struct{}, 256)
		stats   Stats
		depth   int
		hasRoot bool
		closed  bool
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, &ParseError{Err: err}
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if closed {
				return nil, stats, &ParseError{Err: fmt.Errorf("junk after document element: <%s>", el.Name.Local)}
			}
			depth++
			if depth == 1 {
				hasRoot = true
				continue
			}
			if depth != 2 {
				continue
			}
			if _, ok := tags[strings.ToLower(el.Name.Local)]; !ok {
				continue
			}
			stats.Records++
			name, ok := nameAttr(el.Attr)
			if !ok {
				stats.Unnamed++
				continue
			}
			if _, dup := seen[name]; dup {
				stats.Duplicates++
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		case xml.EndElement:
			depth--
			if depth == 0 {
				closed = true
			}
		case xml.CharData:
			if depth == 0 && !blank(el) {
				if closed {
					return nil, stats, &ParseError{Err: errors.New("junk after document element")}
				}
				return nil, stats, &ParseError{Err: errors.New("text before document element")}
			}
		}
	}

	if !hasRoot {
		return nil, stats, &ParseError{Err: errors.New("no root element")}
	}
	if len(names) == 0 {
		return names, stats, ErrNoEntries
	}
	return names, stats, nil
}

// blank reports whether text outside the root holds only whitespace or a
// byte order mark.
func blank(text []byte) bool {
	return len(bytes.TrimFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})) == 0
}

func nameAttr(attrs []xml.Attr) (string, bool) {
	for _, attr := range attrs {
		if attr.Name.Local != "name" {
			continue
		}
		name := strings.TrimRightFunc(attr.Value, unicode.IsSpace)
		if name == "" {
			return "", false
		}
		return name, true
	}
	return "", false
}

func tagSet(recordTags []string) map[string]struct{} {
	if len(recordTags) == 0 {
		recordTags = DefaultRecordTags
	}
	set := make(map[string]struct{}, len(recordTags))
	for _, tag := range recordTags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			set[tag] = struct{}{}
		}
	}
	return set
}
