package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/portslayer/portslayer/internal/kill"
	"github.com/portslayer/portslayer/internal/scan"
	"github.com/portslayer/portslayer/internal/watch"
	"github.com/portslayer/portslayer/pkg/model"
)

type portsMsg watch.Snapshot

type killDoneMsg struct {
	label  string
	killed int
	err    error
}

func (m Model) refreshPorts() tea.Cmd {
	return func() tea.Msg {
		return portsMsg(m.watcher.Refresh())
	}
}

func (m Model) pollPorts() tea.Cmd {
	return func() tea.Msg {
		return portsMsg(m.watcher.Current())
	}
}

func (m Model) killOne(rec model.PortRecord) tea.Cmd {
	return func() tea.Msg {
		if rec.Owner.Known() {
			err := kill.Kill(rec.Owner.PID)
			killed := 0
			if err == nil {
				killed = 1
			}
			return killDoneMsg{
				label:  fmt.Sprintf("PID %d (%s)", rec.Owner.PID, rec.Owner.Name),
				killed: killed,
				err:    err,
			}
		}

		// No resolved owner: free the port itself via fuser.
		err := kill.KillByPort(rec.Port, rec.Protocol)
		killed := 0
		if err == nil {
			killed = 1
		}
		return killDoneMsg{
			label:  fmt.Sprintf("port %d/%s", rec.Port, rec.Protocol),
			killed: killed,
			err:    err,
		}
	}
}

func (m Model) killAll() tea.Cmd {
	ports := m.snapshot.Ports
	return func() tea.Msg {
		var pids []int
		for _, rec := range ports {
			if rec.Owner.Known() {
				pids = append(pids, rec.Owner.PID)
			}
		}
		if len(pids) == 0 {
			return killDoneMsg{label: "all ports", err: fmt.Errorf("no processes with known PID to kill")}
		}
		killed, err := kill.KillAll(pids)
		return killDoneMsg{label: "all ports", killed: killed, err: err}
	}
}

// rebuildTable recomputes the filtered page and feeds it to the table.
func (m *Model) rebuildTable() {
	filtered := scan.Filter(m.snapshot.Ports, m.view.filter)
	m.view = m.view.clampPage(len(filtered))
	m.visible = scan.Page(filtered, m.view.page, m.view.pageSize)

	rows := make([]table.Row, 0, len(m.visible))
	for _, rec := range m.visible {
		pid := "-"
		if rec.Owner.Known() {
			pid = fmt.Sprintf("%d", rec.Owner.PID)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", rec.Port),
			rec.Protocol.Upper(),
			rec.LocalAddr,
			pid,
			rec.Owner.Name,
		})
	}
	m.table.SetRows(rows)
	m.table.SetHeight(m.view.pageSize)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// selectedRecord returns the record behind the table cursor.
func (m Model) selectedRecord() (model.PortRecord, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return model.PortRecord{}, false
	}
	return m.visible[idx], true
}

// filteredCount is the number of records matching the active filter.
func (m Model) filteredCount() int {
	return len(scan.Filter(m.snapshot.Ports, m.view.filter))
}
