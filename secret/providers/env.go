package providers

import (
	"context"
	"os"

	"github.com/kbukum/secretkit/secret"
)

// Env resolves keys from process environment variables. Read-only.
type Env struct{}

// NewEnv constructs the environment provider.
func NewEnv(options map[string]any) (secret.Provider, error) {
	return &Env{}, nil
}

func (p *Env) Name() string { return "environment" }

func (p *Env) GetKey(ctx context.Context, name string) (string, error) {
	return os.Getenv(name), nil
}
