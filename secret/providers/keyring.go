package providers

import (
	"context"

	"github.com/zalando/go-keyring"

	"github.com/kbukum/secretkit/secret"
)

const defaultKeyringService = "secretkit"

// Keyring stores keys in the OS credential store (Keychain on macOS,
// Secret Service on Linux, Credential Manager on Windows). Read/write.
type Keyring struct {
	service string
}

// NewKeyring constructs the OS keyring provider. Options:
//   - service_name: keyring service entries are filed under (default "secretkit")
func NewKeyring(options map[string]any) (secret.Provider, error) {
	return &Keyring{
		service: optString(options, "service_name", defaultKeyringService),
	}, nil
}

func (p *Keyring) Name() string { return "keyring" }

func (p *Keyring) GetKey(ctx context.Context, name string) (string, error) {
	value, err := keyring.Get(p.service, name)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (p *Keyring) SupportsWrite() bool { return true }

func (p *Keyring) WriteKey(ctx context.Context, name, value string) error {
	return keyring.Set(p.service, name, value)
}

func (p *Keyring) ValidateKey(name, value string) bool {
	return validKeyName(name)
}

func (p *Keyring) Describe() map[string]any {
	return map[string]any{
		"name":           p.Name(),
		"supports_write": true,
		"service_name":   p.service,
	}
}
