package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testConfig writes a config that confines file providers to a temp dir
// and disables the backends that would touch the host system.
func testConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf(`
providers:
  vault: {enabled: false}
  1password: {enabled: false}
  lastpass: {enabled: false}
  keyring: {enabled: false}
  dotenv:
    options: {file_path: %q}
  json_file:
    options: {file_path: %q}
  yaml_file:
    options: {file_path: %q}
`,
		filepath.Join(dir, ".env"),
		filepath.Join(dir, "keys.json"),
		filepath.Join(dir, "keys.yaml"),
	)
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestSetThenGetAcrossInvocations(t *testing.T) {
	cfg := testConfig(t)

	if _, err := runCLI(t, cfg, "set", "CLI_TEST_KEY", "cli-value"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	// A fresh invocation resolves the key from the persisted files.
	out, err := runCLI(t, cfg, "get", "CLI_TEST_KEY")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if strings.TrimSpace(out) != "cli-value" {
		t.Errorf("expected raw value on stdout, got %q", out)
	}
}

func TestGetMissingKeyFails(t *testing.T) {
	cfg := testConfig(t)

	_, err := runCLI(t, cfg, "get", "CLI_TEST_ABSENT_KEY")
	if err == nil {
		t.Fatal("expected non-nil error for missing key")
	}
	if !strings.Contains(err.Error(), "CLI_TEST_ABSENT_KEY") {
		t.Errorf("error must name the key, got %q", err.Error())
	}
}

func TestSetNoPersist(t *testing.T) {
	cfg := testConfig(t)

	out, err := runCLI(t, cfg, "set", "CLI_MEM_KEY", "v", "--no-persist")
	if err != nil {
		t.Fatalf("set --no-persist failed: %v", err)
	}
	if !strings.Contains(out, "memory only") {
		t.Errorf("expected memory-only confirmation, got %q", out)
	}

	// Nothing was persisted, so a new invocation misses.
	if _, err := runCLI(t, cfg, "get", "CLI_MEM_KEY"); err == nil {
		t.Error("expected miss after memory-only set")
	}
}

func TestSetFilteredToNonWritableProviderFails(t *testing.T) {
	cfg := testConfig(t)

	if _, err := runCLI(t, cfg, "set", "K", "v", "--provider", "environment"); err == nil {
		t.Error("expected hard failure for non-writable filter")
	}
}

func TestProvidersList(t *testing.T) {
	cfg := testConfig(t)

	out, err := runCLI(t, cfg, "providers", "list")
	if err != nil {
		t.Fatalf("providers list failed: %v", err)
	}
	for _, want := range []string{"environment", "dotenv", "json_file", "yaml_file"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in list, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "vault") {
		t.Errorf("disabled vault must not be active:\n%s", out)
	}
}

func TestProvidersStatusTable(t *testing.T) {
	cfg := testConfig(t)

	out, err := runCLI(t, cfg, "providers", "status")
	if err != nil {
		t.Fatalf("providers status failed: %v", err)
	}
	if !strings.Contains(out, "PROVIDER") || !strings.Contains(out, "WRITABLE") {
		t.Errorf("expected table header, got:\n%s", out)
	}
	if !strings.Contains(out, "Disabled") {
		t.Errorf("expected disabled providers reported, got:\n%s", out)
	}

	// environment (priority 10) must render before keyring (priority 50).
	if strings.Index(out, "environment") > strings.Index(out, "keyring") {
		t.Errorf("expected priority-sorted rows, got:\n%s", out)
	}
}

func TestProvidersEnableUnknownFails(t *testing.T) {
	cfg := testConfig(t)

	if _, err := runCLI(t, cfg, "providers", "enable", "ghost"); err == nil {
		t.Error("expected failure for unknown provider")
	}
}

func TestProvidersWritable(t *testing.T) {
	cfg := testConfig(t)

	out, err := runCLI(t, cfg, "providers", "writable")
	if err != nil {
		t.Fatalf("providers writable failed: %v", err)
	}
	for _, want := range []string{"dotenv", "json_file", "yaml_file"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q writable, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "environment") {
		t.Errorf("environment is read-only, got:\n%s", out)
	}
}
