package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/kbukum/secretkit/errors"
	"github.com/kbukum/secretkit/process"
	"github.com/kbukum/secretkit/secret"
)

const (
	defaultOnePasswordAccount = "my.1password.com"
	defaultOnePasswordEnvFile = "~/.local/.env"
)

// OnePassword resolves keys through the 1Password CLI (op): it signs in
// to the configured account, then reads the key via `op run` against an
// env file referencing 1Password items. Read-only.
type OnePassword struct {
	account string
	envFile string
	timeout time.Duration
}

// NewOnePassword constructs the 1Password CLI provider. Construction
// fails when op is not on PATH, which skips the provider. Options:
//   - account: the 1Password account to sign in to (default my.1password.com)
//   - env_file: env file mapping variable names to 1Password items (default ~/.local/.env)
func NewOnePassword(options map[string]any) (secret.Provider, error) {
	if !process.Installed("op") {
		return nil, errors.New(errors.ErrCodeProviderInitFailed, "1Password CLI (op) not installed")
	}
	return &OnePassword{
		account: optString(options, "account", defaultOnePasswordAccount),
		envFile: expandPath(optString(options, "env_file", defaultOnePasswordEnvFile)),
		timeout: 60 * time.Second,
	}, nil
}

func (p *OnePassword) Name() string { return "1password" }

func (p *OnePassword) GetKey(ctx context.Context, name string) (string, error) {
	if _, err := process.Run(ctx, process.Command{
		Binary:  "op",
		Args:    []string{"signin", "--account", p.account},
		Timeout: p.timeout,
	}); err != nil {
		return "", err
	}

	result, err := process.Run(ctx, process.Command{
		Binary: "op",
		Args: []string{
			"run",
			fmt.Sprintf("--env-file=%s", p.envFile),
			"--no-masking",
			"--",
			"printenv", name,
		},
		Timeout: p.timeout,
	})
	if err != nil {
		return "", err
	}
	return result.TrimmedStdout(), nil
}

func (p *OnePassword) Describe() map[string]any {
	return map[string]any{
		"name":           p.Name(),
		"supports_write": false,
		"account":        p.account,
		"env_file":       p.envFile,
	}
}
