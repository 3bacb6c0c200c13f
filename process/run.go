// Package process executes external commands for CLI-backed secret
// providers. Runs are synchronous and blocking: the caller's context is
// the only cancellation mechanism.
package process

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/kbukum/secretkit/errors"
)

// Run executes a subprocess and waits for it to complete.
// A non-zero exit is returned as an error alongside the captured Result.
func Run(ctx context.Context, cmd Command) (*Result, error) {
	if cmd.Binary == "" {
		return nil, errors.InvalidInput("binary", "binary is required")
	}

	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, cmd.Binary, cmd.Args...) //nolint:gosec // dynamic args are the purpose of this package
	c.Dir = cmd.Dir
	c.Env = mergeEnv(cmd.Env)

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if cmd.Stdin != nil {
		c.Stdin = cmd.Stdin
	}

	start := time.Now()
	err := c.Run()
	duration := time.Since(start)

	result := &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: exitCode(c),
		Duration: duration,
	}

	if err != nil {
		if ctx.Err() != nil {
			return result, errors.Subprocess(cmd.Binary, ctx.Err())
		}
		return result, errors.Subprocess(cmd.Binary, err).WithDetail("exit_code", result.ExitCode)
	}

	return result, nil
}

// Installed reports whether a binary can be resolved via PATH.
// CLI providers use this as an availability probe at construction time.
func Installed(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

func exitCode(c *exec.Cmd) int {
	if c.ProcessState == nil {
		return -1
	}
	return c.ProcessState.ExitCode()
}

// mergeEnv merges additional env vars with the current environment.
func mergeEnv(extra []string) []string {
	if len(extra) == 0 {
		return nil // inherit parent env
	}
	env := os.Environ()
	return append(env, extra...)
}
