package tui

import (
	"strings"

	"github.com/MKhiriev/go-user-directory/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type editOverlayModel struct {
	active     bool
	inputs     []textinput.Model
	focus      int
	submitting bool
	image      string
}

func newEditOverlayModel(u models.User) editOverlayModel {
	values := []string{u.FullName, u.Email, u.Phone}
	placeholders := []string{"full name", "email", "phone"}

	inputs := make([]textinput.Model, len(values))
	for i := range values {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].Width = 40
		inputs[i].SetValue(values[i])
	}
	inputs[0].Focus()

	return editOverlayModel{active: true, inputs: inputs, image: u.ProfileImage}
}

func (m editOverlayModel) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (m editOverlayModel) update(msg tea.Msg) (editOverlayModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m editOverlayModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Edit user"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fitText(m.image, 40)))
	b.WriteString("\n\n")
	b.WriteString("Full name │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Email     │ [" + m.inputs[1].View() + "]\n")
	b.WriteString("Phone     │ [" + m.inputs[2].View() + "]\n\n")
	if m.submitting {
		b.WriteString("Saving...")
	} else {
		b.WriteString("enter save    esc cancel    tab next field")
	}

	return overlayBoxStyle.Render(b.String())
}

func (m appModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.dir.CancelEdit()
		m.edit = editOverlayModel{}
		return m, nil
	case key.Matches(msg, keys.tab):
		m.edit.inputs[m.edit.focus].Blur()
		m.edit.focus = (m.edit.focus + 1) % len(m.edit.inputs)
		m.edit.inputs[m.edit.focus].Focus()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.edit.inputs[m.edit.focus].Blur()
		m.edit.focus = (m.edit.focus - 1 + len(m.edit.inputs)) % len(m.edit.inputs)
		m.edit.inputs[m.edit.focus].Focus()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.edit.submitting {
			return m, nil
		}
		m.edit.submitting = true
		return m, m.track(m.cmdSaveEdit(
			m.edit.inputs[0].Value(),
			m.edit.inputs[1].Value(),
			m.edit.inputs[2].Value(),
		))
	}

	var cmd tea.Cmd
	m.edit, cmd = m.edit.update(msg)
	return m, cmd
}
