package providers

import (
	"context"
	"time"

	"github.com/kbukum/secretkit/errors"
	"github.com/kbukum/secretkit/process"
	"github.com/kbukum/secretkit/secret"
)

// LastPass resolves keys through the LastPass CLI wrapper (olp) with
// the key name as its only argument. Read-only.
type LastPass struct {
	binary  string
	timeout time.Duration
}

// NewLastPass constructs the LastPass CLI provider. Construction fails
// when the binary is not on PATH, which skips the provider. Options:
//   - binary: the LastPass executable (default "olp")
func NewLastPass(options map[string]any) (secret.Provider, error) {
	binary := optString(options, "binary", "olp")
	if !process.Installed(binary) {
		return nil, errors.New(errors.ErrCodeProviderInitFailed, "LastPass CLI ("+binary+") not installed")
	}
	return &LastPass{binary: binary, timeout: 30 * time.Second}, nil
}

func (p *LastPass) Name() string { return "lastpass" }

func (p *LastPass) GetKey(ctx context.Context, name string) (string, error) {
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

func (p *LastPass) Describe() map[string]any {
	return map[string]any{
		"name":           p.Name(),
		"supports_write": false,
		"binary":         p.binary,
	}
}
