package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"datclean/internal/config"
	"datclean/internal/logging"
)

func TestNewFromConfigConsole(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.OutputPaths = []string{filepath.Join(t.TempDir(), "logs", "datclean.log")}

	logger, closeLogs, err := logging.NewFromConfig(&cfg, "run-1", nil)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	defer closeLogs()
	if logger == nil {
		t.Fatal("expected logger instance")
	}
	logger.Info("configured")

	content, err := os.ReadFile(cfg.Logging.OutputPaths[0])
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "run_id=run-1") {
		t.Fatalf("expected run_id in output, got %q", content)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")

	logger, closeLogs, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closeLogs()

	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-debug.log")

	logger, closeLogs, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "debug",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closeLogs()

	logger.Info("message with caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestConsoleLoggerComponentPrefixAndFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	logger, closeLogs, err := logging.New(logging.Options{Format: "console", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closeLogs()

	logging.NewComponentLogger(logger, "matcher").Info("progress",
		logging.Int(logging.FieldKept, 3),
		logging.String(logging.FieldPath, "a b.txt"),
	)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(content)
	for _, want := range []string{"INFO matcher: progress", "kept=3", `path="a b.txt"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be rendered as prefix, got %q", line)
	}
}

func TestJSONLoggerFieldNames(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")
	logger, closeLogs, err := logging.New(logging.Options{Format: "json", RunID: "abc", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closeLogs()
	logger.Info("json message", slog.String("k", "v"))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	for _, want := range []string{`"level":"info"`, `"msg":"json message"`, `"k":"v"`, `"run_id":"abc"`, `"ts":`} {
		if !bytes.Contains(content, []byte(want)) {
			t.Fatalf("expected %s in %s", want, content)
		}
	}
}

func TestNewUnsupportedFormat(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "level.log")
	logger, closeLogs, err := logging.New(logging.Options{Format: "console", Level: "invalid", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closeLogs()
	logger.Debug("hidden")
	logger.Info("shown")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), "hidden") || !strings.Contains(string(content), "shown") {
		t.Fatalf("unexpected output for default level: %q", content)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should not be enabled")
	}
}

func TestStderrWriterOverride(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLogs, err := logging.New(logging.Options{
		Format: "json",
		Level:  "info",
		Stderr: &buf,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closeLogs()
	logger.Info("routed", logging.Int(logging.FieldKept, 3))

	if !strings.Contains(buf.String(), `"kept":3`) {
		t.Fatalf("expected record in override writer, got %q", buf.String())
	}
}

func TestConsoleLoggerRendersProgressCounter(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLogs, err := logging.New(logging.Options{Format: "console", Stderr: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closeLogs()

	logger.Info("matching progress",
		logging.Int(logging.FieldProcessed, 100),
		logging.Int(logging.FieldTotal, 250),
		logging.Int(logging.FieldKept, 40),
	)
	logger.Info("partial", logging.Int(logging.FieldProcessed, 7))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.Contains(lines[0], "matching progress [100/250] kept=40") {
		t.Fatalf("expected bracketed counter, got %q", lines[0])
	}
	if strings.Contains(lines[0], "processed=") || strings.Contains(lines[0], "total=") {
		t.Fatalf("counter fields should not repeat as pairs, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "partial processed=7") {
		t.Fatalf("lone processed field should stay a pair, got %q", lines[1])
	}
}

func TestConsoleLoggerGroupsAndQuoting(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLogs, err := logging.New(logging.Options{Stderr: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closeLogs()

	logger.WithGroup("dat").Info("loaded", slog.String("name", "Sony - PlayStation"), slog.String("empty", ""))

	line := buf.String()
	for _, want := range []string{`dat.name="Sony - PlayStation"`, `dat.empty=""`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %s in %q", want, line)
		}
	}
}

func TestCloseReleasesLogFiles(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "closed.log")
	logger, closeLogs, err := logging.New(logging.Options{Format: "console", OutputPaths: []string{logPath, "stderr"}, Stderr: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("before close")
	if err := closeLogs(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := closeLogs(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	logger.Info("after close")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "before close") {
		t.Fatalf("expected first record in %q", content)
	}
	if strings.Contains(string(content), "after close") {
		t.Fatalf("record written after close: %q", content)
	}
}
