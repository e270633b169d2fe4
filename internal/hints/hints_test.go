package hints_test

import (
	"strings"
	"testing"

	"github.com/alnah/go-oas2pdf/internal/hints"
)

// withGOOS swaps the platform probe for the duration of a test.
func withGOOS(t *testing.T, goos string) {
	t.Helper()
	orig := hints.GOOS
	hints.GOOS = func() string { return goos }
	t.Cleanup(func() { hints.GOOS = orig })
}

func TestForRenderer(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", "winget"},
		{"darwin", "brew"},
		{"linux", "apt"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			withGOOS(t, tt.goos)
			got := hints.ForRenderer()
			if !strings.HasPrefix(got, "\n  hint: ") {
				t.Errorf("hint format wrong: %q", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("ForRenderer() on %s = %q, want substring %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestForBundler(t *testing.T) {
	got := hints.ForBundler()
	if !strings.Contains(got, "npx") || !strings.Contains(got, "redoc-cli") {
		t.Errorf("ForBundler() = %q, want npx and redoc-cli mentions", got)
	}
	if !strings.HasPrefix(got, "\n  hint: ") {
		t.Errorf("hint format wrong: %q", got)
	}
}

func TestForOutputDirectory(t *testing.T) {
	got := hints.ForOutputDirectory()
	if !strings.Contains(got, "writable") {
		t.Errorf("ForOutputDirectory() = %q", got)
	}
}
