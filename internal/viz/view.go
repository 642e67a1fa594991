package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/airscrew/internal/bem"
)

const (
	graphWidth  = 70
	graphHeight = 12
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type metric struct {
	name string
	unit string
	get  func(bem.SpeedPoint) float64
}

var metrics = []metric{
	{"thrust", "N", func(p bem.SpeedPoint) float64 { return p.Thrust }},
	{"torque", "N·m", func(p bem.SpeedPoint) float64 { return p.Torque }},
	{"power", "W", func(p bem.SpeedPoint) float64 { return p.Power }},
	{"thrust coeff", "", func(p bem.SpeedPoint) float64 { return p.ThrustCoeff }},
	{"thrust/power", "N/W", func(p bem.SpeedPoint) float64 { return p.ThrustPerPower }},
}

// Model is an interactive viewer over a computed performance curve: tab
// cycles the plotted metric, left/right scrub through speed points.
type Model struct {
	name     string
	points   []bem.SpeedPoint
	metric   int
	selected int
}

func NewModel(name string, points []bem.SpeedPoint) Model {
	return Model{name: name, points: points}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.metric = (m.metric + 1) % len(metrics)
		case "shift+tab":
			m.metric = (m.metric + len(metrics) - 1) % len(metrics)
		case "left", "h":
			if m.selected > 0 {
				m.selected--
			}
		case "right", "l":
			if m.selected < len(m.points)-1 {
				m.selected++
			}
		case "home":
			m.selected = 0
		case "end":
			m.selected = len(m.points) - 1
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	active := metrics[m.metric]
	b.WriteString(headerStyle.Render(fmt.Sprintf("airscrew · %s · %s vs forward speed", m.name, active.name)))
	b.WriteString("\n")

	b.WriteString(graphStyle.Render(m.graph(active)))
	b.WriteString("\n")
	b.WriteString(m.stats())

	b.WriteString(helpStyle.Render("tab: metric · ←/→: speed point · q: quit"))
	b.WriteString("\n")

	return b.String()
}

// graph plots the active metric, dropping non-finite samples so the static
// point (infinite coefficient) cannot blank the whole plot.
func (m Model) graph(active metric) string {
	data := make([]float64, 0, len(m.points))
	for _, p := range m.points {
		v := active.get(p)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		data = append(data, v)
	}
	if len(data) < 2 {
		return "not enough finite samples to plot"
	}

	return asciigraph.Plot(data,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(fmt.Sprintf("%s over %d speed points", active.name, len(m.points))),
	)
}

func (m Model) stats() string {
	p := m.points[m.selected]

	rows := []struct {
		label string
		value string
	}{
		{"speed", fmt.Sprintf("%.1f km/h", p.Speed)},
		{"thrust", fmt.Sprintf("%.1f N", p.Thrust)},
		{"torque", fmt.Sprintf("%.2f N·m", p.Torque)},
		{"power", fmt.Sprintf("%.0f W", p.Power)},
		{"thrust coeff", formatRatio(p.ThrustCoeff)},
		{"thrust/power", formatRatio(p.ThrustPerPower)},
	}

	var b strings.Builder
	b.WriteString(activeStyle.Render(fmt.Sprintf("point %d/%d", m.selected+1, len(m.points))))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	return statsStyle.Render(b.String()) + "\n"
}

func formatRatio(v float64) string {
	if math.IsNaN(v) {
		return "n/a (static)"
	}
	if math.IsInf(v, 0) {
		return "∞ (static)"
	}
	return fmt.Sprintf("%.4f", v)
}
