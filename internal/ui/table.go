package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// EnvironmentRow is one deploy target in the envs listing.
type EnvironmentRow struct {
	Name       string
	WorkingDir string
	Note       string
	Sentinel   bool // valid target even when undeclared
}

// RenderEnvironments renders the deploy targets as a static table. Sentinel
// rows carry a checkmark in the name column.
func RenderEnvironments(rows []EnvironmentRow) string {
	if len(rows) == 0 {
		return "No environments configured"
	}

	cols := []table.Column{
		{Title: "ENVIRONMENT", Width: lipgloss.Width("ENVIRONMENT")},
		{Title: "WORKING DIRECTORY", Width: lipgloss.Width("WORKING DIRECTORY")},
		{Title: "NOTE", Width: lipgloss.Width("NOTE")},
	}

	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		name := "  " + r.Name
		if r.Sentinel {
			name = SymbolSuccess + " " + r.Name
		}
		row := table.Row{name, r.WorkingDir, r.Note}
		tableRows[i] = row
		for j, cell := range row {
			if w := lipgloss.Width(cell); w > cols[j].Width {
				cols[j].Width = w
			}
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(tableRows),
		table.WithFocused(false),
		table.WithHeight(len(tableRows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	s.Selected = s.Selected.
		Foreground(ColorPrimary).
		Bold(false)
	t.SetStyles(s)

	return t.View()
}
