package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/render"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenCreate
)

// clipboardWrite is swapped in tests; headless CI has no clipboard.
var clipboardWrite = clipboard.WriteAll

type appModel struct {
	ctx       context.Context
	dir       service.DirectoryService
	buildInfo models.AppBuildInfo
	noticeTTL time.Duration

	currentScreen screen
	cursor        int
	busy          int
	spinner       spinner.Model

	form          createFormModel
	edit          editOverlayModel
	confirm       confirmModel
	showBuildInfo bool

	notice    models.Notice
	noticeSeq int

	// pending collects the command produced by an action handler during
	// dispatch.
	pending tea.Cmd
}

func newAppModel(ctx context.Context, dir service.DirectoryService, buildInfo models.AppBuildInfo, noticeTTL time.Duration) appModel {
	return appModel{
		ctx:       ctx,
		dir:       dir,
		buildInfo: buildInfo,
		noticeTTL: noticeTTL,
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		form:      newCreateFormModel(),
		// the initial load issued by Init
		busy: 1,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case spinner.TickMsg:
		if m.busy == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadedMsg:
		m.done()
		m.clampCursor()
		return m, m.showNotice(msg.notice, msg.err)
	case createdMsg:
		m.done()
		m.form.submitting = false
		if msg.err == nil {
			m.form = newCreateFormModel()
			m.currentScreen = screenList
			m.moveCursorTo(msg.user.ID)
		}
		return m, m.showNotice(msg.notice, msg.err)
	case autoFilledMsg:
		m.done()
		m.form.filling = false
		if msg.err == nil {
			m.form.fill(msg.user)
		}
		return m, m.showNotice(msg.notice, msg.err)
	case editSavedMsg:
		m.done()
		m.edit.submitting = false
		if msg.err == nil || errors.Is(msg.err, service.ErrUserNotFound) || errors.Is(msg.err, service.ErrNoSelection) {
			m.edit = editOverlayModel{}
		}
		return m, m.showNotice(msg.notice, msg.err)
	case deletedMsg:
		m.done()
		m.clampCursor()
		return m, m.showNotice(msg.notice, msg.err)
	case favoriteToggledMsg:
		m.done()
		m.clampCursor()
		return m, m.showNotice(msg.notice, msg.err)
	case copiedMsg:
		if msg.err != nil {
			return m, m.showNotice(models.Notice{Message: "could not copy email", Severity: models.SeverityDanger}, nil)
		}
		return m, m.showNotice(models.Notice{Message: "email copied", Severity: models.SeverityPrimary}, nil)
	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = models.Notice{}
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	// Cursor blink and other input-internal messages.
	if m.edit.active {
		var cmd tea.Cmd
		m.edit, cmd = m.edit.update(msg)
		return m, cmd
	}
	if m.currentScreen == screenCreate {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.confirm.active {
		return m.updateConfirm(msg)
	}
	if m.edit.active {
		return m.updateEdit(msg)
	}
	if m.currentScreen == screenCreate {
		return m.updateCreate(msg)
	}
	return m.updateList(msg)
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenCreate:
		body = m.form.View()
	default:
		body = m.viewList()
	}

	if m.edit.active {
		body += "\n\n" + m.edit.View()
	}
	if m.confirm.active {
		body += "\n\n" + m.confirm.View()
	}
	if !m.notice.IsZero() {
		body += "\n\n" + noticeStyle(m.notice.Severity).Render(m.notice.Message)
	}

	return appStyle.Render(body)
}

// dispatch routes a card action through the dispatch table and returns the
// command the handler produced, if any.
func (m *appModel) dispatch(a render.Action) tea.Cmd {
	m.pending = nil
	service.NewDispatcher(m).Dispatch(a)
	cmd := m.pending
	m.pending = nil
	return cmd
}

// OnEdit implements service.ActionHandlers.
func (m *appModel) OnEdit(id models.UserID) {
	u, err := m.dir.RequestEdit(id)
	if err != nil {
		return
	}
	m.edit = newEditOverlayModel(u)
	m.pending = m.edit.focusCmd()
}

// OnDelete implements service.ActionHandlers.
func (m *appModel) OnDelete(id models.UserID) {
	u, err := m.dir.RequestDelete(id)
	if err != nil {
		return
	}
	m.confirm = confirmModel{active: true, name: u.FullName}
}

// OnToggleFavorite implements service.ActionHandlers.
func (m *appModel) OnToggleFavorite(id models.UserID) {
	m.pending = m.track(m.cmdToggleFavorite(id))
}

// track marks a network command as in flight and starts the spinner when it
// is the first one.
func (m *appModel) track(cmd tea.Cmd) tea.Cmd {
	m.busy++
	if m.busy == 1 {
		return tea.Batch(m.spinner.Tick, cmd)
	}
	return cmd
}

func (m *appModel) done() {
	if m.busy > 0 {
		m.busy--
	}
}

// showNotice replaces the toast and schedules its removal. Transport
// failures get a readable reason appended.
func (m *appModel) showNotice(n models.Notice, err error) tea.Cmd {
	if n.IsZero() {
		return nil
	}
	if reason := humanizeServerUnavailableError(err); reason != "" {
		n.Message = fmt.Sprintf("%s: %s", n.Message, reason)
	}

	m.notice = n
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(m.noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (m appModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	dir := m.dir

	return func() tea.Msg {
		notice, err := dir.Load(ctx)
		return loadedMsg{notice: notice, err: err}
	}
}

func (m appModel) cmdCreate(form models.User) tea.Cmd {
	ctx := m.ctx
	dir := m.dir

	return func() tea.Msg {
		u, notice, err := dir.Create(ctx, form)
		return createdMsg{user: u, notice: notice, err: err}
	}
}

func (m appModel) cmdAutoFill() tea.Cmd {
	ctx := m.ctx
	dir := m.dir

	return func() tea.Msg {
		u, notice, err := dir.AutoFill(ctx)
		return autoFilledMsg{user: u, notice: notice, err: err}
	}
}

func (m appModel) cmdSaveEdit(fullName, email, phone string) tea.Cmd {
	ctx := m.ctx
	dir := m.dir

	return func() tea.Msg {
		notice, err := dir.SaveEdit(ctx, fullName, email, phone)
		return editSavedMsg{notice: notice, err: err}
	}
}

func (m appModel) cmdConfirmDelete() tea.Cmd {
	ctx := m.ctx
	dir := m.dir

	return func() tea.Msg {
		notice, err := dir.ConfirmDelete(ctx)
		return deletedMsg{notice: notice, err: err}
	}
}

func (m appModel) cmdToggleFavorite(id models.UserID) tea.Cmd {
	ctx := m.ctx
	dir := m.dir

	return func() tea.Msg {
		notice, err := dir.ToggleFavorite(ctx, id)
		return favoriteToggledMsg{notice: notice, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
