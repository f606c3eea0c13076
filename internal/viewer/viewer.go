// Package viewer is the interactive terminal chart behind the view command.
package viewer

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arloliu/hoverline/dataset"
	"github.com/arloliu/hoverline/errs"
	"github.com/arloliu/hoverline/geom"
	"github.com/arloliu/hoverline/internal/options"
	"github.com/arloliu/hoverline/term"
	"github.com/arloliu/hoverline/tooltip"
)

const (
	headerHeight = 1
	footerHeight = 1
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// frameMsg marks a frame boundary: the pending pointer move is processed.
type frameMsg time.Time

// Config configures a Model.
type Config struct {
	Width, Height int
	FPS           int
	Options       []tooltip.Option
	Logger        *slog.Logger
}

// Model is a bubbletea model showing one dataset with a hover tooltip.
//
// Mouse motion is forwarded to the tooltip driver as pointer moves; the
// driver processes the latest one on the next frame tick.
type Model struct {
	ds       *dataset.Dataset
	extent   dataset.Extent
	surface  *term.Surface
	sched    *tooltip.ManualScheduler
	driver   *tooltip.Driver
	xAxis    geom.Axis
	yAxis    geom.Axis
	interval time.Duration
	inside   bool
	logger   *slog.Logger
}

var _ tea.Model = (*Model)(nil)

// New creates a Model for ds and performs the first render.
func New(ds *dataset.Dataset, cfg Config) (*Model, error) {
	extent, ok := ds.Extent()
	if !ok {
		return nil, fmt.Errorf("%w: %s has no points", errs.ErrInvalidDataset, ds.Name)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	surface, err := term.NewSurface(cfg.Width, chartHeight(cfg.Height), term.WithOrigin(0, headerHeight))
	if err != nil {
		return nil, err
	}

	sched := tooltip.NewManualScheduler()
	// one row above the pointer unless configured otherwise
	defaults := options.Join(
		tooltip.WithLogger(logger),
		tooltip.WithTooltipOffset(0, -1),
	)
	opts := append([]tooltip.Option{defaults}, cfg.Options...)
	driver, err := tooltip.New(surface, sched, opts...)
	if err != nil {
		return nil, err
	}

	m := &Model{
		ds:       ds,
		extent:   extent,
		surface:  surface,
		sched:    sched,
		driver:   driver,
		interval: time.Second / time.Duration(max(cfg.FPS, 1)),
		logger:   logger,
	}
	m.rendered()

	return m, nil
}

// Driver returns the tooltip driver of the chart.
func (m *Model) Driver() *tooltip.Driver { return m.driver }

// Surface returns the chart surface.
func (m *Model) Surface() *term.Surface { return m.surface }

func (m *Model) rendered() {
	m.xAxis, m.yAxis = m.surface.Axes(m.extent.MinX, m.extent.MaxX, m.extent.MinY, m.extent.MaxY)
	err := m.driver.Rendered(tooltip.RenderEvent{
		XAxis:  m.xAxis,
		YAxis:  m.yAxis,
		Series: m.ds.Series,
	})
	if err != nil {
		m.logger.Warn("chart render", "error", err)
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.surface.Resize(msg.Width, chartHeight(msg.Height))
		m.rendered()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.driver.Close()
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.pointer(msg.X, msg.Y)
	case frameMsg:
		m.sched.Flush()
		return m, m.tick()
	}

	return m, nil
}

// pointer turns terminal mouse positions into enter, leave and move events.
func (m *Model) pointer(x, y int) {
	inside := m.surface.Contains(x, y)
	switch {
	case inside && !m.inside:
		m.driver.PointerEnter()
	case !inside && m.inside:
		m.driver.PointerLeave()
	}
	m.inside = inside

	if inside {
		m.driver.PointerMove(tooltip.Pointer{X: float64(x), Y: float64(y)})
	}
}

func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s  [%s]", m.ds.Name, strings.Join(m.ds.Names(), ", "))))
	sb.WriteByte('\n')
	sb.WriteString(m.surface.Render(m.ds.Series, m.xAxis, m.yAxis))
	sb.WriteByte('\n')
	sb.WriteString(footerStyle.Render(fmt.Sprintf("x %g..%g  y %g..%g  %s  q to quit",
		m.extent.MinX, m.extent.MaxX, m.extent.MinY, m.extent.MaxY, m.driver.State())))

	return sb.String()
}

func chartHeight(total int) int {
	return max(total-headerHeight-footerHeight, 1)
}
