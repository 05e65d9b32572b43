package formatter

import (
	"strings"
	"testing"
)

func TestReportLabelsThousands(t *testing.T) {
	out := Report(1000, "3.1415926535")
	if !strings.HasPrefix(out, "1 Thousand Digits of Pi\n") {
		t.Errorf("unexpected label: %q", out)
	}
}

func TestReportLabelsMillions(t *testing.T) {
	out := Report(2_000_000, "3.1")
	if !strings.HasPrefix(out, "2 Million Digits of Pi\n") {
		t.Errorf("unexpected label: %q", out)
	}
}

func TestReportGroupsFiftyPerLine(t *testing.T) {
	frac := strings.Repeat("1", 120)
	out := Report(120, "3."+frac)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header (2 lines) + blank + "3." + 3 digit lines (50, 50, 20)
	last := lines[len(lines)-1]
	if len(last) != 20 {
		t.Errorf("last line length = %d, want 20", len(last))
	}
}
