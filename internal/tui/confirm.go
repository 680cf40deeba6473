package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	active bool
	name   string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.name + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirm = confirmModel{}
		return m, m.track(m.cmdConfirmDelete())
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.dir.CancelDelete()
		m.confirm = confirmModel{}
	}
	return m, nil
}
