package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ctlab/internal/response"
)

const (
	plotWidth  = 70
	plotHeight = 14
)

var graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)

// ResponsePlot charts the simulated output, overlaying the reference
// signal when the run carries one.
func ResponsePlot(res response.SimulationResult) string {
	caption := fmt.Sprintf("%s response", res.Input)
	var chart string
	if res.Reference != nil {
		chart = asciigraph.PlotMany(
			[][]float64{res.Outputs, res.Reference},
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(caption+" (output vs reference)"),
		)
	} else {
		chart = asciigraph.Plot(
			res.Outputs,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(caption),
		)
	}

	var b strings.Builder
	b.WriteString(graphStyle.Render(chart))
	b.WriteString("\n")
	if len(res.Times) > 0 {
		b.WriteString(fmt.Sprintf("t: [%.1f, %.1f]  samples: %d\n",
			res.Times[0], res.Times[len(res.Times)-1], len(res.Times)))
	}
	return b.String()
}
