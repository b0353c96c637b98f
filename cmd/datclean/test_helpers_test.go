package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"datclean/internal/config"
	"datclean/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	baseDir    string
	configPath string
	urlList    string
	catalog    string
	outBase    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)

	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Chdir(base)

	configPath := filepath.Join(base, "datclean-test.toml")
	testsupport.WriteConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		baseDir:    base,
		configPath: configPath,
		urlList:    filepath.Join(base, "input", "urls.txt"),
		catalog:    filepath.Join(base, "input", "set.dat"),
		outBase:    filepath.Join(base, "result"),
	}
}

func (e *cliTestEnv) keptPath() string     { return e.outBase + ".txt" }
func (e *cliTestEnv) rejectedPath() string { return e.cfg.RejectedLogPath() }
func (e *cliTestEnv) missingPath() string  { return e.cfg.MissingLogPath() }

func (e *cliTestEnv) cleanArgs(extra ...string) []string {
	args := []string{"-i", e.urlList, "-d", e.catalog, "-o", e.outBase}
	return append(args, extra...)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireMissing(t *testing.T, paths ...string) {
	t.Helper()
	for _, path := range paths {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Fatalf("expected %s to be absent (stat err %v)", path, err)
		}
	}
}
