package viz

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ctlab/internal/analysis"
)

var (
	verdictStable   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	verdictMarginal = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	verdictUnstable = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	rowLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Verdict renders the classification with color.
func Verdict(c analysis.Classification) string {
	switch c {
	case analysis.Stable:
		return verdictStable.Render(c.String())
	case analysis.MarginallyStable:
		return verdictMarginal.Render(c.String())
	default:
		return verdictUnstable.Render(c.String())
	}
}

// RouthTable renders the table rows labeled by descending power of s.
func RouthTable(res analysis.StabilityResult) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	top := res.Degree
	for i, row := range res.Rows {
		label := fmt.Sprintf("s^%d", top-i)
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprintf("%.4g", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", rowLabelStyle.Render(label), strings.Join(cells, "\t"))
	}
	w.Flush()

	b.WriteString("verdict: " + Verdict(res.Classification))
	if res.Reason != "" {
		b.WriteString(" (" + res.Reason + ")")
	}
	if res.Classification == analysis.Unstable {
		b.WriteString(fmt.Sprintf("\nsign changes: %d", res.SignChanges))
	}
	b.WriteString("\n")
	return b.String()
}

// RootList renders poles or zeros one per line with stability tags.
func RootList(label string, roots []analysis.Root) string {
	var b strings.Builder
	if len(roots) == 0 {
		b.WriteString(fmt.Sprintf("%s: none\n", label))
		return b.String()
	}
	for _, r := range roots {
		tag := "unstable"
		if r.Stable {
			tag = "stable"
		}
		b.WriteString(fmt.Sprintf("%s: %.4f%+.4fi  [%s]\n", label, real(r.S), imag(r.S), tag))
	}
	return b.String()
}
