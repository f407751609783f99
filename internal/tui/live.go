// Package tui provides a live terminal view that walks a mixture through a
// temperature ramp and charts the resulting transport properties.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/fluidlab/gasmix/internal/mixture"
)

const historyCapacity = 240

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model ramps temperature on every tick and keeps bounded property history
// for the charts.
type Model struct {
	mix     *mixture.Mixture
	scalars []float64
	name    string

	temp     float64
	start    float64
	stop     float64
	tempStep float64
	running  bool

	muHistory []float64
	ktHistory []float64
}

// NewModel builds a live view ramping from start to stop in the given step.
func NewModel(mix *mixture.Mixture, scalars []float64, name string, start, stop, step float64) Model {
	m := Model{
		mix:       mix,
		scalars:   scalars,
		name:      name,
		temp:      start,
		start:     start,
		stop:      stop,
		tempStep:  step,
		running:   true,
		muHistory: make([]float64, 0, historyCapacity),
		ktHistory: make([]float64, 0, historyCapacity),
	}
	m.evaluate()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and advances the ramp.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.temp = m.start
			m.muHistory = m.muHistory[:0]
			m.ktHistory = m.ktHistory[:0]
			m.evaluate()
		case "up", "k":
			m.tempStep *= 1.25
		case "down", "j":
			m.tempStep /= 1.25
		}
	case TickMsg:
		if m.running {
			m.temp += m.tempStep
			if m.temp > m.stop {
				m.temp = m.start
			}
			m.evaluate()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) evaluate() {
	m.mix.UpdateState(m.temp, m.scalars)
	m.muHistory = append(m.muHistory, m.mix.Viscosity())
	if len(m.muHistory) > historyCapacity {
		m.muHistory = m.muHistory[1:]
	}
	m.ktHistory = append(m.ktHistory, m.mix.Conductivity())
	if len(m.ktHistory) > historyCapacity {
		m.ktHistory = m.ktHistory[1:]
	}
}

// View renders the charts and the current mixture state.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	status := "RAMPING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n")

	if len(m.muHistory) > 1 {
		chart := asciigraph.Plot(m.muHistory, asciigraph.Height(6), asciigraph.Width(60), asciigraph.Caption("viscosity (Pa s)"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if len(m.ktHistory) > 1 {
		chart := asciigraph.Plot(m.ktHistory, asciigraph.Height(6), asciigraph.Width(60), asciigraph.Caption("conductivity (W/m/K)"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Temperature", fmt.Sprintf("%.1f K", m.mix.Temperature())},
		{"Step", fmt.Sprintf("%.2f K/frame", m.tempStep)},
		{"Density", fmt.Sprintf("%.4f kg/m^3", m.mix.Density())},
		{"Cp", fmt.Sprintf("%.1f J/kg/K", m.mix.Cp())},
		{"Cv", fmt.Sprintf("%.1f J/kg/K", m.mix.Cv())},
		{"R", fmt.Sprintf("%.2f J/kg/K", m.mix.GasConstant())},
		{"Rule", m.mix.Rule().String()},
	}
	var stats strings.Builder
	for _, row := range rows {
		stats.WriteString(labelStyle.Render(row.label) + valueStyle.Render(row.value) + "\n")
	}
	s.WriteString(statsStyle.Render(stats.String()))

	s.WriteString(helpStyle.Render("\nSP:Pause R:Reset Q:Quit ↑↓:Ramp speed"))
	return s.String()
}
