package report

import (
	"time"

	"datclean/internal/matcher"
)

// Summary is the end-of-run digest.
type Summary struct {
	RunID          string `json:"run_id"`
	URLList        string `json:"url_list"`
	Catalog        string `json:"catalog"`
	URLs           int    `json:"urls"`
	CatalogEntries int    `json:"catalog_entries"`
	Kept           int    `json:"kept"`
	Rejected       int    `json:"rejected"`
	Remaining      int    `json:"remaining"`
	Outputs        Paths  `json:"outputs"`
	DryRun         bool   `json:"dry_run"`
	ElapsedMillis  int64  `json:"elapsed_ms"`
}

// NewSummary fills the counters from res. urls and names are the loaded
// input sizes after deduplication.
func NewSummary(res matcher.Result, urls, names int, elapsed time.Duration) Summary {
	return Summary{
		URLs:           urls,
		CatalogEntries: names,
		Kept:           len(res.Kept),
		Rejected:       len(res.Rejected),
		Remaining:      len(res.Remaining),
		ElapsedMillis:  elapsed.Milliseconds(),
	}
}

// Balanced reports whether the counters satisfy the matching invariants:
// every URL is kept or rejected, and every catalog entry is consumed by a
// kept URL or still remaining.
func (s Summary) Balanced() bool {
	return s.Kept+s.Rejected == s.URLs && s.Kept+s.Remaining == s.CatalogEntries
}
