package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"datclean/internal/report"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 8
	statusIndent     = "  "
)

var statusStyles = map[statusKind]struct {
	label string
	color string
}{
	statusInfo:  {"INFO", ansiBlue},
	statusOK:    {"OK", ansiGreen},
	statusWarn:  {"WARN", ansiYellow},
	statusError: {"ERROR", ansiRed},
}

// renderStatusLine formats "  Label:   [KIND] message", colored by kind when
// colorize is set.
func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	style, ok := statusStyles[kind]
	if !ok {
		style = statusStyles[statusInfo]
	}
	line := fmt.Sprintf("%s%-*s [%s]", statusIndent, statusLabelWidth, label+":", style.label)
	if message != "" {
		line += " " + message
	}
	if colorize {
		return style.color + line + ansiReset
	}
	return line
}

func shouldColorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printSummary(cmd *cobra.Command, s report.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, summaryTable(s))
	for _, line := range summaryStatusLines(s, shouldColorize(out)) {
		fmt.Fprintln(out, line)
	}
}

func summaryTable(s report.Summary) string {
	file := func(path string) string {
		if s.DryRun {
			return path + " (not written)"
		}
		return path
	}
	rows := [][]string{
		{"URLs", strconv.Itoa(s.URLs), s.URLList},
		{"Dat entries", strconv.Itoa(s.CatalogEntries), s.Catalog},
		{"Kept", strconv.Itoa(s.Kept), file(s.Outputs.Kept)},
		{"Rejected", strconv.Itoa(s.Rejected), file(s.Outputs.Rejected)},
		{"Missing", strconv.Itoa(s.Remaining), file(s.Outputs.Missing)},
	}
	return renderTable([]string{"Set", "Count", "File"}, rows, []columnAlignment{alignLeft, alignRight, alignLeft})
}

func summaryStatusLines(s report.Summary, colorize bool) []string {
	var lines []string
	add := func(label string, kind statusKind, msg string) {
		lines = append(lines, renderStatusLine(label, kind, msg, colorize))
	}

	switch {
	case s.CatalogEntries == 0:
		add("Dat", statusWarn, "no entries found; all URLs rejected")
	case s.Remaining == 0:
		add("Dat", statusOK, "every entry has a URL")
	default:
		add("Dat", statusWarn, fmt.Sprintf("%d entries still missing", s.Remaining))
	}
	if !s.Balanced() {
		add("Counts", statusError, "kept/rejected totals do not add up")
	}
	if s.DryRun {
		add("Output", statusInfo, "dry run, nothing written")
	} else {
		add("Output", statusOK, "lists written")
	}
	return lines
}
