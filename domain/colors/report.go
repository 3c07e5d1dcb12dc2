package colors

import (
	"fmt"
	"strings"
)

// FormatAnalysis renders an Analysis as the human-readable stdout report.
// Pure formatting; the caller decides where the text goes.
func FormatAnalysis(a *Analysis) string {
	var b strings.Builder
	b.WriteString("--- Analysis Results ---\n")
	fmt.Fprintf(&b, "Total entries parsed: %d\n", a.Total)
	fmt.Fprintf(&b, "Unique colors found: %d\n", a.Unique)
	fmt.Fprintf(&b, "Mean color (by frequency closeness): %s\n", a.MeanClosest)
	fmt.Fprintf(&b, "Most worn color (mode): %s\n", a.Mode)
	fmt.Fprintf(&b, "Median color (lexicographic median of list): %s\n", a.Median)
	fmt.Fprintf(&b, "Variance of frequencies: %g\n", a.Variance)
	fmt.Fprintf(&b, "Probability a random pick is %s: %.4f\n", a.Target, a.TargetProbability)
	return b.String()
}
