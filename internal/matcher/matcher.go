package matcher

import (
	"slices"
	"strings"

	"datclean/internal/normalize"
)

// DefaultExtensions is the archive extension list tried, in order, when the
// caller does not supply one.
var DefaultExtensions = []string{".zip", ".7z", ".rar"}

// Options tunes a matching run.
type Options struct {
	// Extensions are appended to each folded catalog name before the
	// substring test. They are compared as given, so pass them lowercased.
	Extensions []string
	// OnProgress, when set, is invoked after every URL is classified.
	OnProgress func(Progress)
}

// Progress is a running snapshot emitted after each URL.
type Progress struct {
	Processed int
	Total     int
	Kept      int
	Rejected  int
	URL       string
	Name      string
	Matched   bool
}

// Pair records which catalog name a kept URL consumed.
type Pair struct {
	URL  string
	Name string
}

// Result partitions the URLs and catalog names after a run.
type Result struct {
	Kept      []string
	Rejected  []string
	Remaining []string
	Pairs     []Pair
}

type entry struct {
	name   string
	folded string
}

// Match classifies every URL as kept or rejected. Inputs are not modified.
func Match(urls, names []string, opts Options) Result {
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	remaining := make([]entry, len(names))
	for i, name := range names {
		remaining[i] = entry{name: name, folded: normalize.Name(name)}
	}

	res := Result{
		Kept:     make([]string, 0, len(urls)),
		Rejected: make([]string, 0, len(urls)),
		Pairs:    make([]Pair, 0, len(urls)),
	}

	for i, rawURL := range urls {
		idx := find(normalize.URL(rawURL), remaining, extensions)
		progress := Progress{Processed: i + 1, Total: len(urls), URL: rawURL}
		if idx >= 0 {
			consumed := remaining[idx]
			remaining = slices.Delete(remaining, idx, idx+1)
			res.Kept = append(res.Kept, rawURL)
			res.Pairs = append(res.Pairs, Pair{URL: rawURL, Name: consumed.name})
			progress.Matched = true
			progress.Name = consumed.name
		} else {
			res.Rejected = append(res.Rejected, rawURL)
		}
		if opts.OnProgress != nil {
			progress.Kept = len(res.Kept)
			progress.Rejected = len(res.Rejected)
			opts.OnProgress(progress)
		}
	}

	res.Remaining = make([]string, len(remaining))
	for i, e := range remaining {
		res.Remaining[i] = e.name
	}
	return res
}

// find returns the index of the first remaining entry matching url, or -1.
func find(url string, remaining []entry, extensions []string) int {
	for i, e := range remaining {
		for _, ext := range extensions {
			if strings.Contains(url, e.folded+ext) {
				return i
			}
		}
	}
	return -1
}
