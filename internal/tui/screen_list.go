package tui

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-user-directory/internal/render"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const listHotKeys = "n: new │ e: edit │ d: delete │ f: favorite │ *: favorites only │ r: reload │ y: copy email │ v: about │ q: quit"

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.dir.View())-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.newUser):
		m.currentScreen = screenCreate
		return m, m.form.focusCmd()
	case key.Matches(msg, keys.edit):
		return m, m.dispatchCurrent(render.ActionEdit)
	case key.Matches(msg, keys.delete):
		return m, m.dispatchCurrent(render.ActionDelete)
	case key.Matches(msg, keys.favorite):
		return m, m.dispatchCurrent(render.ActionFavorite)
	case key.Matches(msg, keys.filter):
		m.dir.ToggleFilter()
		m.cursor = 0
	case key.Matches(msg, keys.reload):
		return m, m.track(m.cmdLoad())
	case key.Matches(msg, keys.copyEmail):
		if card, ok := m.currentCard(); ok && card.Email != "" {
			return m, cmdCopyToClipboard(card.Email)
		}
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m *appModel) dispatchCurrent(tag render.ActionTag) tea.Cmd {
	card, ok := m.currentCard()
	if !ok {
		return nil
	}
	action, ok := card.Action(tag)
	if !ok {
		return nil
	}
	return m.dispatch(action)
}

func (m appModel) currentCard() (render.Card, bool) {
	page := render.Render(m.dir.View())
	if m.cursor < 0 || m.cursor >= len(page.Cards) {
		return render.Card{}, false
	}
	return page.Cards[m.cursor], true
}

func (m *appModel) clampCursor() {
	n := len(m.dir.View())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *appModel) moveCursorTo(id models.UserID) {
	view := m.dir.View()
	if i := slices.IndexFunc(view, func(u models.User) bool { return u.ID == id }); i != -1 {
		m.cursor = i
		return
	}
	m.clampCursor()
}

func (m appModel) viewList() string {
	page := render.Render(m.dir.View())

	title := "USER DIRECTORY"
	if m.busy > 0 {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	b.WriteString(page.CountLabel)
	if m.dir.FavoritesOnly() {
		b.WriteString("  ")
		b.WriteString(filterStyle.Render("[favorites only]"))
	}
	b.WriteString("\n\n")

	if page.Empty() {
		b.WriteString(page.Placeholder)
	}
	for i, card := range page.Cards {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderCard(card, i == m.cursor))
	}

	return renderPage(title, b.String(), listHotKeys)
}

func renderCard(card render.Card, selected bool) string {
	favorite := card.FavoriteLabel
	if card.Favorite {
		favorite = favoriteStyle.Render(favorite)
	}

	lines := []string{
		titleStyle.Render(fitText(card.FullName, 50)),
		fitText(card.Email, 50),
		fitText(card.Phone, 50),
		helpStyle.Render(fitText(card.ProfileImage, 50)),
		"[e] edit  [d] delete  [f] " + favorite,
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}
