package providers

import (
	"context"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/kbukum/secretkit/secret"
)

func TestKeyringRoundTrip(t *testing.T) {
	keyring.MockInit()

	p, err := NewKeyring(map[string]any{"service_name": "secretkit-test"})
	if err != nil {
		t.Fatalf("NewKeyring failed: %v", err)
	}

	ctx := context.Background()
	w := p.(secret.Writer)
	if err := w.WriteKey(ctx, "RING_KEY", "ring-value"); err != nil {
		t.Fatalf("WriteKey failed: %v", err)
	}

	value, err := p.GetKey(ctx, "RING_KEY")
	if err != nil {
		t.Fatalf("GetKey failed: %v", err)
	}
	if value != "ring-value" {
		t.Errorf("expected 'ring-value', got %q", value)
	}
}

func TestKeyringMissIsNotAnError(t *testing.T) {
	keyring.MockInit()

	p, _ := NewKeyring(nil)
	value, err := p.GetKey(context.Background(), "NO_SUCH_ENTRY")
	if err != nil {
		t.Fatalf("expected miss to be silent, got %v", err)
	}
	if value != "" {
		t.Errorf("expected empty value, got %q", value)
	}
}

func TestKeyringDescribeReportsService(t *testing.T) {
	p, _ := NewKeyring(map[string]any{"service_name": "custom-svc"})
	info := p.(secret.Describer).Describe()
	if info["service_name"] != "custom-svc" {
		t.Errorf("expected service_name 'custom-svc', got %v", info["service_name"])
	}
}
