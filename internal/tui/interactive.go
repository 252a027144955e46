// Package tui is an interactive gain explorer: adjust the loop gain
// and watch the closed-loop poles and stability verdict update.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ctlab/internal/analysis"
	"github.com/san-kum/ctlab/internal/tfunc"
	"github.com/san-kum/ctlab/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type model struct {
	plant tfunc.TransferFunction
	gain  float64
	step  float64

	closed  tfunc.TransferFunction
	poles   analysis.PoleZeroSet
	verdict analysis.StabilityResult
	evalErr error

	width  int
	height int
}

// NewExplorer builds the explorer around an open-loop plant, starting
// at unit gain.
func NewExplorer(plant tfunc.TransferFunction) tea.Model {
	m := model{plant: plant, gain: 1.0, step: 0.1, width: 80, height: 24}
	m.recompute()
	return m
}

func (m model) Init() tea.Cmd { return nil }

// recompute closes the loop at the current gain and refreshes the
// poles and verdict.
func (m *model) recompute() {
	scaled, err := tfunc.New(m.plant.Num().Scale(m.gain), m.plant.Den())
	if err != nil {
		m.evalErr = err
		return
	}
	closed, err := tfunc.FeedbackUnity(scaled)
	if err != nil {
		m.evalErr = err
		return
	}
	m.closed = closed

	set, err := analysis.ExtractPolesZeros(closed)
	if err != nil {
		m.evalErr = err
		return
	}
	res, err := analysis.AnalyzeStability(closed.Den())
	if err != nil {
		m.evalErr = err
		return
	}
	m.poles = set
	m.verdict = res
	m.evalErr = nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.gain += m.step
			m.recompute()
		case "down", "j":
			m.gain -= m.step
			if m.gain < 0 {
				m.gain = 0
			}
			m.recompute()
		case "left", "h":
			m.step /= 10
			if m.step < 0.001 {
				m.step = 0.001
			}
		case "right", "l":
			m.step *= 10
			if m.step > 100 {
				m.step = 100
			}
		case "r":
			m.gain = 1.0
			m.step = 0.1
			m.recompute()
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString(cyan.Render("GAIN EXPLORER") + "\n\n")
	s.WriteString(white.Render(fmt.Sprintf("K = %.4g", m.gain)))
	s.WriteString(dim.Render(fmt.Sprintf("   (step %.4g)", m.step)) + "\n\n")

	if m.evalErr != nil {
		s.WriteString(yellow.Render("error: "+m.evalErr.Error()) + "\n")
	} else {
		s.WriteString(viz.PoleZeroMap(m.poles) + "\n\n")
		s.WriteString("closed loop: " + viz.Verdict(m.verdict.Classification) + "\n")
		s.WriteString(fmt.Sprintf("dc gain: %.4g\n", m.closed.DCGain()))
	}

	s.WriteString(dim.Render("\n↑/↓ gain  ←/→ step size  r reset  q quit"))
	return s.String()
}
