package urllist

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LoadHTML harvests download links from a saved HTML listing page.
func LoadHTML(path, base string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open url list: %w", err)
	}
	defer file.Close()

	urls, err := ReadHTML(file, base)
	if err != nil {
		return nil, fmt.Errorf("read url list %s: %w", path, err)
	}
	return urls, nil
}

// ReadHTML collects a[href] targets in document order. Relative links are
// resolved against base when it is non-empty. Navigation links (fragments,
// javascript:, parent directory) are skipped.
func ReadHTML(r io.Reader, base string) ([]string, error) {
	var baseURL *url.URL
	if strings.TrimSpace(base) != "" {
		u, err := url.Parse(strings.TrimSpace(base))
		if err != nil {
			return nil, fmt.Errorf("parse base url %q: %w", base, err)
		}
		baseURL = u
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var d dedup
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if skipHref(href) {
			return
		}
		if baseURL != nil {
			ref, err := url.Parse(href)
			if err != nil {
				// Keep the raw text; a malformed href can still carry a matchable name.
				d.add(href)
				return
			}
			href = baseURL.ResolveReference(ref).String()
		}
		d.add(href)
	})
	return d.values(), nil
}

func skipHref(href string) bool {
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "?") {
		return true
	}
	lower := strings.ToLower(href)
	if strings.HasPrefix(lower, "javascript:") || strings.HasPrefix(lower, "mailto:") {
		return true
	}
	switch href {
	case "../", "..", "./", ".", "/":
		return true
	}
	return false
}
