package tui

import (
	"strings"

	"github.com/MKhiriev/go-user-directory/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	createFieldFullName = iota
	createFieldEmail
	createFieldPhone
	createFieldProfileImage
)

type createFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	filling    bool
}

func newCreateFormModel() createFormModel {
	placeholders := []string{"full name", "email", "phone", "profile image url"}

	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = p
		inputs[i].Width = 50
	}
	inputs[createFieldProfileImage].SetValue(models.DefaultProfileImage)
	inputs[createFieldFullName].Focus()

	return createFormModel{inputs: inputs}
}

func (m createFormModel) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (m createFormModel) toUser() models.User {
	return models.User{
		FullName:     m.inputs[createFieldFullName].Value(),
		Email:        m.inputs[createFieldEmail].Value(),
		Phone:        m.inputs[createFieldPhone].Value(),
		ProfileImage: m.inputs[createFieldProfileImage].Value(),
	}
}

func (m *createFormModel) fill(u models.User) {
	m.inputs[createFieldFullName].SetValue(u.FullName)
	m.inputs[createFieldEmail].SetValue(u.Email)
	m.inputs[createFieldPhone].SetValue(u.Phone)
	m.inputs[createFieldProfileImage].SetValue(u.ProfileImage)
}

func (m createFormModel) update(msg tea.Msg) (createFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *createFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *createFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m createFormModel) View() string {
	var b strings.Builder

	b.WriteString("Full name │ [" + m.inputs[createFieldFullName].View() + "]\n")
	b.WriteString("Email     │ [" + m.inputs[createFieldEmail].View() + "]\n")
	b.WriteString("Phone     │ [" + m.inputs[createFieldPhone].View() + "]\n")
	b.WriteString("Image     │ [" + m.inputs[createFieldProfileImage].View() + "]\n")
	switch {
	case m.submitting:
		b.WriteString("Action    │ [Saving...]")
	case m.filling:
		b.WriteString("Action    │ [Fetching identity...]")
	default:
		b.WriteString("Action    │ [Create]")
	}

	return renderPage("NEW USER", b.String(), "esc: back │ tab: next field │ ctrl+a: auto-fill │ ctrl+r: clear │ enter: create")
}

func (m appModel) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.autoFill):
		if m.form.filling {
			return m, nil
		}
		m.form.filling = true
		return m, m.track(m.cmdAutoFill())
	case key.Matches(msg, keys.clearForm):
		m.form = newCreateFormModel()
		return m, m.form.focusCmd()
	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		m.form.submitting = true
		return m, m.track(m.cmdCreate(m.form.toUser()))
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}
