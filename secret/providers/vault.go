package providers

import (
	"context"
	"time"

	"github.com/kbukum/secretkit/process"
	"github.com/kbukum/secretkit/secret"
)

// Vault resolves keys by invoking the vault command with the key name
// as its only argument. A non-zero exit or empty output is a miss.
// Read-only.
type Vault struct {
	binary  string
	timeout time.Duration
}

// NewVault constructs the vault CLI provider. Options:
//   - binary: the vault executable (default "vault")
func NewVault(options map[string]any) (secret.Provider, error) {
	return &Vault{
		binary:  optString(options, "binary", "vault"),
		timeout: 30 * time.Second,
	}, nil
}

func (p *Vault) Name() string { return "vault" }

func (p *Vault) GetKey(ctx context.Context, name string) (string, error) {
	result, err := process.Run(ctx, process.Command{
		Binary:  p.binary,
		Args:    []string{name},
		Timeout: p.timeout,
	})
	if err != nil {
		return "", err
	}
	return result.TrimmedStdout(), nil
}

func (p *Vault) Describe() map[string]any {
	return map[string]any{
		"name":           p.Name(),
		"supports_write": false,
		"binary":         p.binary,
	}
}
