package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/portslayer/portslayer/internal/scan"
	"github.com/portslayer/portslayer/internal/watch"
	"github.com/portslayer/portslayer/pkg/model"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#585858")) // Dark Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")). // White
			Background(lipgloss.Color("#d75f5f")). // Red
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#5f5fd7")). // Purple/Blue
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("#585858")).
				Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")). // Dimmed Gray
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("#585858")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87d787")) // Soft green

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f5f")). // Soft red
			Bold(true)

	confirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaf5f")). // Orange-amber
			Bold(true)

	pageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bcbcbc")) // Light Gray
)

type pendingKill int

const (
	killNone pendingKill = iota
	killSelected
	killEverything
)

type Model struct {
	table     table.Model
	watcher   *watch.Watcher
	cancel    context.CancelFunc
	view      viewState
	snapshot  watch.Snapshot
	visible   []model.PortRecord // current filtered page backing the table rows
	pending   pendingKill
	statusMsg string
	statusErr bool
	width     int
	height    int
	quitting  bool
	version   string
}

func newTable() table.Model {
	columns := []table.Column{
		{Title: "Port", Width: 6},
		{Title: "Proto", Width: 6},
		{Title: "Address", Width: 25},
		{Title: "PID", Width: 8},
		{Title: "Process", Width: 25},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(defaultPageSize),
	)

	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#ffffaf")). // Light Yellow
		Background(lipgloss.Color("#d70000")). // Red
		Bold(false)
	t.SetStyles(s)
	return t
}

func InitialModel(w *watch.Watcher, cancel context.CancelFunc, version string) Model {
	return Model{
		table:   newTable(),
		watcher: w,
		cancel:  cancel,
		view:    initialViewState(),
		version: version,
	}
}

// Start runs the interactive port view. The watcher keeps rescanning in
// the background; the UI only ever reads published snapshots.
func Start(version string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := watch.New(watch.DefaultInterval, scan.Scan)
	go w.Run(ctx)

	p := tea.NewProgram(InitialModel(w, cancel, version), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshPorts(), waitTick())
}
