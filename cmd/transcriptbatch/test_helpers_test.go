package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"transcriptbatch/internal/config"
	"transcriptbatch/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	baseDir    string
	configPath string
}

// setupCLITestEnv isolates HOME and the working directory so only the
// generated config file is discovered.
func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv(config.EnvBatchSize, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Chdir(base)

	cfg := testsupport.NewConfig(t, opts...)
	configPath := filepath.Join(base, "transcriptbatch-test.toml")
	testsupport.WriteConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, baseDir: base, configPath: configPath}
}

func (e *cliTestEnv) path(parts ...string) string {
	return filepath.Join(append([]string{e.baseDir}, parts...)...)
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

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
