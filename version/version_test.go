package version

import (
	"strings"
	"testing"
)

func TestShortDefault(t *testing.T) {
	if !strings.HasPrefix(Short(), "dev") {
		t.Errorf("expected dev prefix, got %q", Short())
	}
}

func TestShortTruncatesCommit(t *testing.T) {
	orig := GitCommit
	GitCommit = "0123456789abcdef"
	defer func() { GitCommit = orig }()

	if !strings.Contains(Short(), "(0123456)") {
		t.Errorf("expected truncated commit, got %q", Short())
	}
}
