package logger

import (
	"strings"
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got %q", cfg.Level)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected default output 'stderr', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json", Output: "stderr"}, false},
		{"bad level", Config{Level: "loud", Format: "json", Output: "stderr"}, true},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stderr"}, true},
		{"bad output", Config{Level: "info", Format: "json", Output: "syslog"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistryGetFallsBackToGlobal(t *testing.T) {
	l := Get("resolver")
	if l == nil {
		t.Fatal("Get returned nil for unregistered name")
	}
	if l.component != "resolver" {
		t.Errorf("expected component 'resolver', got %q", l.component)
	}
}

func TestRegistryGetReturnsRegistered(t *testing.T) {
	custom := NewDefault("custom")
	Register("custom", custom)

	if got := Get("custom"); got != custom {
		t.Error("expected registered logger instance")
	}
}

func TestFieldsBuildsPairs(t *testing.T) {
	m := Fields("provider", "env", "priority", 10)
	if m["provider"] != "env" {
		t.Errorf("expected provider=env, got %v", m["provider"])
	}
	if m["priority"] != 10 {
		t.Errorf("expected priority=10, got %v", m["priority"])
	}
}

func TestFieldsIgnoresDanglingKey(t *testing.T) {
	m := Fields("provider", "env", "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 field, got %d", len(m))
	}
}

func TestRedact(t *testing.T) {
	if got := Redact("short"); got != "****" {
		t.Errorf("short values must be fully masked, got %q", got)
	}

	got := Redact("sk-1234567890abcdef")
	if !strings.HasPrefix(got, "sk") || !strings.HasSuffix(got, "ef") {
		t.Errorf("expected edge characters preserved, got %q", got)
	}
	if strings.Contains(got, "1234567890") {
		t.Errorf("redacted value leaks secret: %q", got)
	}
}
