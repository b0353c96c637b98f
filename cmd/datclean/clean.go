package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"datclean/internal/catalog"
	"datclean/internal/config"
	"datclean/internal/logging"
	"datclean/internal/matcher"
	"datclean/internal/report"
	"datclean/internal/urllist"
)

const defaultOutBasename = "out"

type cleanOptions struct {
	urlList    string
	catalog    string
	out        string
	format     string
	baseURL    string
	extensions []string
	logLevel   string
	dryRun     bool
	jsonOutput bool
}

func runClean(cmd *cobra.Command, ctx *commandContext, opts cleanOptions) error {
	base, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	cfg, err := applyOverrides(*base, opts)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger, closeLogs, err := logging.NewFromConfig(&cfg, runID, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLogs()
	log := logging.NewComponentLogger(logger, "cli")
	if ctx.configExists {
		log.Debug("configuration loaded", logging.String(logging.FieldPath, ctx.configPath))
	}

	started := time.Now()

	urlFormat := urllist.ResolveFormat(opts.urlList, cfg.Input.Format)
	log.Info("loading url list",
		logging.String(logging.FieldPath, opts.urlList),
		logging.String("format", urlFormat),
	)
	urls, err := urllist.Load(opts.urlList, urlFormat, cfg.Input.BaseURL)
	if err != nil {
		return fmt.Errorf("load url list: %w", err)
	}

	log.Info("loading dat catalog", logging.String(logging.FieldPath, opts.catalog))
	names, stats, err := catalog.Load(opts.catalog, cfg.Catalog.RecordTags)
	switch {
	case errors.Is(err, catalog.ErrNoEntries):
		log.Warn("dat catalog has no usable entries; every url will be rejected",
			logging.String(logging.FieldPath, opts.catalog),
			logging.String("record_tags", strings.Join(cfg.Catalog.RecordTags, ",")),
		)
	case err != nil:
		return fmt.Errorf("load dat catalog: %w", err)
	}
	logCatalogStats(log, names, stats)

	tracker := report.NewTracker(logger, cfg.Progress.Interval)
	tracker.Start(len(urls))
	res := matcher.Match(urls, names, matcher.Options{
		Extensions: cfg.Matching.Extensions,
		OnProgress: tracker.Observe,
	})
	tracker.Finish(res)

	paths := report.Paths{
		Kept:     cfg.KeptPath(opts.out),
		Rejected: cfg.RejectedLogPath(),
		Missing:  cfg.MissingLogPath(),
	}
	if opts.dryRun {
		log.Info("dry run; no files written")
	} else {
		if err := report.NewWriter(paths, cfg.Output.LogDir, logger).Write(res); err != nil {
			return err
		}
	}

	summary := report.NewSummary(res, len(urls), len(names), time.Since(started))
	summary.RunID = runID
	summary.URLList = opts.urlList
	summary.Catalog = opts.catalog
	summary.Outputs = paths
	summary.DryRun = opts.dryRun

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), summary)
	}
	printSummary(cmd, summary)
	return nil
}

// applyOverrides layers command-line flags over the loaded configuration and
// revalidates the result.
func applyOverrides(cfg config.Config, opts cleanOptions) (config.Config, error) {
	if len(opts.extensions) > 0 {
		cfg.Matching.Extensions = config.NormalizeExtensions(opts.extensions)
		if len(cfg.Matching.Extensions) == 0 {
			return cfg, errors.New("--ext: no usable extensions given")
		}
	}
	if format := strings.TrimSpace(opts.format); format != "" {
		cfg.Input.Format = strings.ToLower(format)
	}
	if base := strings.TrimSpace(opts.baseURL); base != "" {
		cfg.Input.BaseURL = base
	}
	if level := strings.TrimSpace(opts.logLevel); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if strings.TrimSpace(opts.out) == "" {
		return cfg, errors.New("--out must not be empty")
	}
	return cfg, nil
}

func logCatalogStats(log *slog.Logger, names []string, stats catalog.Stats) {
	log.Info("dat catalog loaded",
		logging.Int("entries", len(names)),
		logging.Int("records", stats.Records),
	)
	if stats.Duplicates > 0 || stats.Unnamed > 0 {
		log.Debug("dat catalog records skipped",
			logging.Int("duplicates", stats.Duplicates),
			logging.Int("unnamed", stats.Unnamed),
		)
	}
}
