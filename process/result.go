package process

import (
	"strings"
	"time"
)

// Result holds the output and status of a completed subprocess.
type Result struct {
	// Stdout is the captured standard output.
	Stdout []byte
	// Stderr is the captured standard error.
	Stderr []byte
	// ExitCode is the process exit code. -1 if the process was killed.
	ExitCode int
	// Duration is how long the process ran.
	Duration time.Duration
}

// TrimmedStdout returns stdout with surrounding whitespace removed.
// Secret-manager CLIs print the value followed by a newline.
func (r *Result) TrimmedStdout() string {
	return strings.TrimSpace(string(r.Stdout))
}

// Success reports whether the process exited with code zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}
