package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/portslayer/portslayer/internal/watch"
)

type tickMsg time.Time

func waitTick() tea.Cmd {
	return tea.Tick(watch.DefaultInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// The watcher rescans on its own schedule; the tick only pulls
		// the freshest snapshot into the view.
		return m, tea.Batch(m.pollPorts(), waitTick())

	case portsMsg:
		snap := watch.Snapshot(msg)
		if snap.Version != m.snapshot.Version {
			m.snapshot = snap
			m.rebuildTable()
		}
		return m, nil

	case killDoneMsg:
		if msg.err != nil {
			if msg.killed > 0 {
				m.statusMsg = fmt.Sprintf("Killed %d, some failed: %v", msg.killed, msg.err)
			} else {
				m.statusMsg = fmt.Sprintf("Kill %s failed: %v", msg.label, msg.err)
			}
			m.statusErr = true
		} else {
			m.statusMsg = fmt.Sprintf("Killed %s (%d process(es))", msg.label, msg.killed)
			m.statusErr = false
		}
		return m, m.refreshPorts()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Confirmation prompt swallows everything except yes/no.
	if m.pending != killNone {
		switch msg.String() {
		case "y", "Y":
			pending := m.pending
			m.pending = killNone
			m.statusMsg = "Killing..."
			m.statusErr = false
			if pending == killEverything {
				return m, m.killAll()
			}
			if rec, ok := m.selectedRecord(); ok {
				return m, m.killOne(rec)
			}
			return m, nil
		case "n", "N", "esc":
			m.pending = killNone
			m.statusMsg = ""
		}
		return m, nil
	}

	m.statusMsg = "" // clear any transient status on interaction

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		m.cancel()
		return m, tea.Quit

	case "r":
		m.view = m.view.apply(action{kind: actionRefresh}, m.filteredCount())
		return m, m.refreshPorts()

	case "f":
		m.view = m.view.apply(action{kind: actionSetFilter, filter: m.view.filter.Next()}, m.filteredCount())
		m.rebuildTable()
		return m, nil

	case "s":
		m.view = m.view.apply(action{kind: actionSetPageSize, size: m.view.nextPageSize()}, m.filteredCount())
		m.rebuildTable()
		return m, nil

	case "left", "h":
		m.view = m.view.apply(action{kind: actionPrevPage}, m.filteredCount())
		m.rebuildTable()
		return m, nil

	case "right", "l":
		m.view = m.view.apply(action{kind: actionNextPage}, m.filteredCount())
		m.rebuildTable()
		return m, nil

	case "k":
		if _, ok := m.selectedRecord(); ok {
			m.pending = killSelected
		}
		return m, nil

	case "K":
		if len(m.snapshot.Ports) > 0 {
			m.pending = killEverything
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}
