package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"

	"github.com/portslayer/portslayer/internal/scan"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render("portslayer " + m.version)

	total := m.filteredCount()
	pages := scan.TotalPages(total, m.view.pageSize)
	filterLabel := m.view.filter.Label()

	header := fmt.Sprintf("%s  %s",
		title,
		pageStyle.Render(fmt.Sprintf("%d ports (%s)  ·  page %d/%d  ·  %d per page",
			total, filterLabel, m.view.page+1, pages, m.view.pageSize)),
	)
	if !m.snapshot.Taken.IsZero() {
		header += pageStyle.Render(fmt.Sprintf("  ·  scanned %s", m.snapshot.Taken.Format("15:04:05")))
	}

	body := m.table.View()
	if total == 0 {
		body = pageStyle.Render("\n  No open ports found.\n")
	}

	status := ""
	switch {
	case m.pending == killSelected:
		if rec, ok := m.selectedRecord(); ok {
			status = confirmStyle.Render(fmt.Sprintf("Kill %s? (y/n)", rec.String()))
		}
	case m.pending == killEverything:
		status = confirmStyle.Render(fmt.Sprintf("Kill ALL %d listed ports? (y/n)", len(m.snapshot.Ports)))
	case m.statusMsg != "" && m.statusErr:
		status = errorStyle.Render(m.statusMsg)
	case m.statusMsg != "":
		status = statusStyle.Render(m.statusMsg)
	}
	if status != "" && m.width > 4 {
		status = wrap.String(status, m.width-4)
	}

	footer := footerStyle.Render(
		"↑/↓ select · ←/→ page · f filter · s page size · r refresh · k kill · K kill all · q quit")

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", status, footer)

	if m.width > 2 && m.height > 2 {
		return baseStyle.
			Width(m.width - 2).
			Height(m.height - 2).
			Padding(0, 1).
			Render(content)
	}
	return content
}
