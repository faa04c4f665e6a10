// Package tui is the live terminal view of a running world.
//
// It is strictly a reader: on every frame it samples the guarded
// particle collection for positions (drawn on an ASCII density map) and
// speeds (drawn as a histogram), plus the latest interval report. It
// never mutates simulation state beyond pausing the run loop.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gaslab/internal/analysis"
	"github.com/san-kum/gaslab/internal/config"
	"github.com/san-kum/gaslab/internal/engine"
	"github.com/san-kum/gaslab/internal/gas"
)

const (
	canvasWidth   = 72
	canvasHeight  = 24
	histogramBins = 40
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0, 0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

// TickMsg drives one render frame.
type TickMsg time.Time

// Model samples a World at the render rate and draws it.
type Model struct {
	world     *engine.World
	cfg       *config.Config
	frame     time.Duration
	discs     []engine.Disc
	speeds    []float64
	report    engine.Report
	hasReport bool
}

// NewModel creates a view over a world that Run is (or will be)
// driving elsewhere.
func NewModel(world *engine.World, cfg *config.Config) Model {
	return Model{
		world: world,
		cfg:   cfg,
		frame: time.Duration(float64(time.Second) / float64(cfg.RenderRate)),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.world.SetPaused(!m.world.Paused())
		}
	case TickMsg:
		m.discs = m.world.Discs()
		m.speeds = m.world.Speeds()
		if r, ok := m.world.LastReport(); ok {
			m.report = r
			m.hasReport = true
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	left := canvasStyle.Render(m.renderCanvas())
	right := statsStyle.Render(m.renderStats())
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	graph := graphStyle.Render(m.renderHistogram())
	help := helpStyle.Render("space pause · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, top, graph, help)
}

// renderCanvas maps particle positions onto a character grid, shading
// each cell by how many particles fall in it.
func (m Model) renderCanvas() string {
	bounds := m.world.Bounds()
	counts := make([]int, canvasWidth*canvasHeight)

	for _, d := range m.discs {
		cx := int(d.X / bounds.Width * canvasWidth)
		cy := int(d.Y / bounds.Height * canvasHeight)
		if cx >= canvasWidth {
			cx = canvasWidth - 1
		}
		if cy >= canvasHeight {
			cy = canvasHeight - 1
		}
		counts[cy*canvasWidth+cx]++
	}

	shades := []rune{' ', '·', ':', 'o', 'O', '●'}
	var sb strings.Builder
	for y := 0; y < canvasHeight; y++ {
		for x := 0; x < canvasWidth; x++ {
			n := counts[y*canvasWidth+x]
			if n >= len(shades) {
				n = len(shades) - 1
			}
			sb.WriteRune(shades[n])
		}
		if y < canvasHeight-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (m Model) renderStats() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("hard-disk gas"))
	sb.WriteByte('\n')

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(valueStyle.Render(value))
		sb.WriteByte('\n')
	}

	row("particles", fmt.Sprintf("%d", m.world.ParticleCount()))
	row("sim time", fmt.Sprintf("%.1f s", m.world.SimTime()))
	row("mean speed", fmt.Sprintf("%.1f m/s", analysis.MeanSpeed(m.speeds)))
	row("v_rms target", fmt.Sprintf("%.1f m/s", gas.RMSSpeed(m.cfg.TargetTemp, m.cfg.Mass)))

	if m.hasReport {
		sb.WriteByte('\n')
		row("bounces/s", fmt.Sprintf("%d", m.report.Bounces))
		row("pressure", fmt.Sprintf("%.3e Pa", m.report.Pressure))
		row("ideal", fmt.Sprintf("%.3e Pa", m.report.IdealPressure))
		row("diff", fmt.Sprintf("%.2f%%", m.report.PercentDiff))
		for name, val := range m.report.Metrics {
			row(name, fmt.Sprintf("%.4g", val))
		}
	}

	if m.world.Paused() {
		sb.WriteByte('\n')
		sb.WriteString(pausedStyle.Render("PAUSED"))
	}
	return sb.String()
}

func (m Model) renderHistogram() string {
	counts, _ := analysis.Histogram(m.speeds, histogramBins)
	if counts == nil {
		return "collecting speed samples..."
	}
	return asciigraph.Plot(counts,
		asciigraph.Height(8),
		asciigraph.Width(110),
		asciigraph.Caption("speed distribution"),
	)
}
