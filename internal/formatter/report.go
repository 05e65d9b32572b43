package formatter

import (
	"fmt"
	"strings"
)

// Report renders a human-readable summary banner for piStr: a digit-count
// label, an attribution line, and the digits grouped 50-per-line. It is
// meant for stderr only — the canonical digit-string artifact written to
// stdout or --out must never carry this banner, or its fixed-point
// invariant (exactly N characters after the point) would no longer hold.
func Report(digits int, piStr string) string {
	var out strings.Builder

	var label string
	switch {
	case digits >= 1_000_000 && digits%1_000_000 == 0:
		label = fmt.Sprintf("%d Million Digits of Pi", digits/1_000_000)
	case digits >= 1_000 && digits%1_000 == 0:
		label = fmt.Sprintf("%d Thousand Digits of Pi", digits/1_000)
	default:
		label = fmt.Sprintf("%d Digits of Pi", digits)
	}
	out.WriteString(label + "\n")
	out.WriteString("computed with piracer\n\n")

	intPart, frac, found := strings.Cut(piStr, ".")
	out.WriteString(intPart + ".\n")
	if !found {
		return out.String()
	}

	const perLine = 50
	for i := 0; i < len(frac); i += perLine {
		end := i + perLine
		if end > len(frac) {
			end = len(frac)
		}
		out.WriteString(frac[i:end] + "\n")
	}
	return out.String()
}
