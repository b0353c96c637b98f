package report

import (
	"log/slog"
	"time"

	"datclean/internal/logging"
	"datclean/internal/matcher"
)

// Tracker logs matching progress at a fixed cadence. It is meant to be
// plugged into matcher.Options.OnProgress.
type Tracker struct {
	logger   *slog.Logger
	sampler  *logging.ProgressSampler
	started  time.Time
	reported int
}

// NewTracker logs one progress line every interval URLs (plus the last one).
func NewTracker(logger *slog.Logger, interval int) *Tracker {
	return &Tracker{
		logger:  logging.NewComponentLogger(logger, "matcher"),
		sampler: logging.NewProgressSampler(interval),
	}
}

// Start records the run size and logs the opening line.
func (t *Tracker) Start(total int) {
	t.sampler.Reset()
	t.started = time.Now()
	t.reported = 0
	t.logger.Info("matching started",
		logging.Int(logging.FieldProcessed, 0),
		logging.Int(logging.FieldTotal, total),
	)
}

// Observe receives every per-URL classification.
func (t *Tracker) Observe(p matcher.Progress) {
	if p.Matched {
		t.logger.Debug("url kept", logging.String("url", p.URL), logging.String("name", p.Name))
	} else {
		t.logger.Debug("url rejected", logging.String("url", p.URL))
	}
	if !t.sampler.ShouldLog(p.Processed, p.Total) {
		return
	}
	t.reported++
	t.logger.Info("matching progress",
		logging.Int(logging.FieldProcessed, p.Processed),
		logging.Int(logging.FieldTotal, p.Total),
		logging.Int(logging.FieldKept, p.Kept),
		logging.Int(logging.FieldRejected, p.Rejected),
	)
}

// Finish logs the closing totals for res.
func (t *Tracker) Finish(res matcher.Result) {
	t.logger.Info("matching complete",
		logging.Int(logging.FieldTotal, len(res.Kept)+len(res.Rejected)),
		logging.Int(logging.FieldKept, len(res.Kept)),
		logging.Int(logging.FieldRejected, len(res.Rejected)),
		logging.Int(logging.FieldRemaining, len(res.Remaining)),
		logging.Duration("elapsed", time.Since(t.started)),
	)
}

// Reported returns how many sampled progress lines were emitted.
func (t *Tracker) Reported() int {
	return t.reported
}
