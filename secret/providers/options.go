package providers

import (
	"os"
	"path/filepath"
	"strings"
)

// optString reads a string option, falling back to def when absent or
// of the wrong type.
func optString(options map[string]any, key, def string) string {
	if options == nil {
		return def
	}
	if v, ok := options[key].(string); ok && v != "" {
		return v
	}
	return def
}

// expandPath expands a leading ~ to the user's home directory and
// returns an absolute path.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// ensureParentDir creates the parent directory of path if needed.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o700)
}

// validKeyName is the shared pre-write check: key names must not be
// empty or whitespace.
func validKeyName(name string) bool {
	return strings.TrimSpace(name) != ""
}
