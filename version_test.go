package ai_text_completion

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	if Version() == "" {
		t.Error("Version() should not be empty")
	}
}

func TestVersionInfo(t *testing.T) {
	info := VersionInfo()
	for _, want := range []string{"ai_text_completion version", "commit:", "built:", "go:"} {
		if !strings.Contains(info, want) {
			t.Errorf("VersionInfo missing %q: %q", want, info)
		}
	}
}
