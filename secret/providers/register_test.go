package providers

import (
	"testing"

	"github.com/kbukum/secretkit/secret"
)

func TestRegisterAllDefaults(t *testing.T) {
	reg := secret.NewRegistry()
	if err := RegisterAll(reg, nil); err != nil {
		t.Fatalf("RegisterAll failed: %v", err)
	}

	ds := reg.ByPriority()
	if len(ds) != 8 {
		t.Fatalf("expected 8 built-in descriptors, got %d", len(ds))
	}
	if ds[0].Name != "environment" || ds[0].Priority != 10 {
		t.Errorf("expected environment first at priority 10, got %s/%d", ds[0].Name, ds[0].Priority)
	}
	if ds[len(ds)-1].Name != "keyring" {
		t.Errorf("expected keyring last, got %s", ds[len(ds)-1].Name)
	}

	// Equal priorities keep registration order: json_file before 1password.
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name
	}
	idx := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		return -1
	}
	if idx("json_file") > idx("1password") {
		t.Errorf("expected json_file before 1password on tied priority, got %v", names)
	}
}

func TestRegisterAllAppliesOverrides(t *testing.T) {
	disabled := false
	priority := 5

	reg := secret.NewRegistry()
	err := RegisterAll(reg, map[string]Override{
		"vault": {Enabled: &disabled},
		"keyring": {
			Priority: &priority,
			Options:  map[string]any{"service_name": "myapp"},
		},
	})
	if err != nil {
		t.Fatalf("RegisterAll failed: %v", err)
	}

	ds := reg.ByPriority()
	if ds[0].Name != "keyring" {
		t.Errorf("expected overridden keyring priority to sort first, got %s", ds[0].Name)
	}
	if ds[0].Options["service_name"] != "myapp" {
		t.Errorf("expected options override, got %v", ds[0].Options)
	}

	for _, d := range ds {
		if d.Name == "vault" && d.Enabled {
			t.Error("expected vault disabled via override")
		}
	}
}
