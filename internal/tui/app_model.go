// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Teamgrid Authors

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/teamgrid/richinfo-server/internal/adapter"
	"github.com/teamgrid/richinfo-server/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenFieldForm
	screenLookup
	screenPeer
	screenTeamForm
	screenMemberForm
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx           context.Context
	server        adapter.ServerAdapter
	mode          appMode
	currentScreen screen

	welcome    welcomeModel
	login      loginModel
	register   registerModel
	list       listModel
	fieldForm  fieldFormModel
	lookup     lookupModel
	peer       peerModel
	teamForm   teamFormModel
	memberForm memberFormModel

	user          models.User
	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	logout        bool
	resultUser    models.User
}

func newLoginAppModel(ctx context.Context, server adapter.ServerAdapter) appModel {
	return appModel{
		ctx:           ctx,
		server:        server,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		list:          newListModel(),
	}
}

func newMainAppModel(ctx context.Context, server adapter.ServerAdapter, user models.User) appModel {
	m := newLoginAppModel(ctx, server)
	m.mode = modeMain
	m.user = user
	m.currentScreen = screenList
	m.list.loading = true
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return m.cmdLoadFields()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteField(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case authDoneMsg:
		m.resultUser = msg.user
		return m, tea.Quit
	case authFailedMsg:
		m.setSubmitting(false)
		m.showErrorf(humanizeServerUnavailableError(msg.err))
		return m, nil
	case fieldsLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.list.fields = msg.fields
		if m.list.idx >= len(m.list.fields) {
			m.list.idx = len(m.list.fields) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case fieldsSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeFieldError(msg.err))
			return m, nil
		}
		m.pendingDelete = ""
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadFields()
	case peerLoadedMsg:
		m.lookup.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizePeerError(msg.err))
			return m, nil
		}
		m.peer = peerModel{userID: msg.userID, fields: msg.fields}
		m.currentScreen = screenPeer
		return m, nil
	case teamCreatedMsg:
		m.teamForm.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.teamForm.created = fmt.Sprintf("Created team %q with ID %d", msg.team.Name, msg.team.TeamID)
		m.teamForm.input.SetValue("")
		return m, nil
	case memberAddedMsg:
		m.memberForm.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.memberForm.status = "Member added"
		return m, nil
	case copiedMsg:
		m.list.status = "Copied!"
		m.peer.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		m.peer.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenFieldForm:
		return m.updateFieldForm(msg)
	case screenLookup:
		return m.updateLookup(msg)
	case screenPeer:
		return m.updatePeer(msg)
	case screenTeamForm:
		return m.updateTeamForm(msg)
	case screenMemberForm:
		return m.updateMemberForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenFieldForm:
		body = m.fieldForm.View()
	case screenLookup:
		body = m.lookup.View()
	case screenPeer:
		body = m.peer.View()
	case screenTeamForm:
		body = m.teamForm.View()
	case screenMemberForm:
		body = m.memberForm.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.fieldForm.submitting = v
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			login := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if login == "" || pass == "" {
				m.showErrorf("Login and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.User{Login: login, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.register.inputs[0].Value())
			login := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if name == "" || login == "" || pass == "" {
				m.showErrorf("Name, login and password are required")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(models.User{Name: name, Login: login, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.fields)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.newItem):
			m.fieldForm = newFieldFormModel(nil)
			m.currentScreen = screenFieldForm
		case key.Matches(msg, keys.edit):
			field, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.fieldForm = newFieldFormModel(&field)
			m.currentScreen = screenFieldForm
		case key.Matches(msg, keys.delete):
			field, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = field.Name
			m.pendingDelete = field.Name
		case key.Matches(msg, keys.copy):
			field, ok := m.list.current()
			if !ok || field.Value == "" {
				return m, nil
			}
			return m, cmdCopyToClipboard(field.Value)
		case key.Matches(msg, keys.lookup):
			m.lookup = newLookupModel()
			m.currentScreen = screenLookup
		case key.Matches(msg, keys.team):
			m.teamForm = newTeamFormModel()
			m.currentScreen = screenTeamForm
		case key.Matches(msg, keys.member):
			m.memberForm = newMemberFormModel()
			m.currentScreen = screenMemberForm
		case key.Matches(msg, keys.reload):
			if m.list.loading {
				return m, nil
			}
			m.list.loading = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadFields())
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateFieldForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.fieldForm = focusNextFieldForm(m.fieldForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.fieldForm = focusPrevFieldForm(m.fieldForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.fieldForm.submitting {
				return m, nil
			}
			field := m.fieldForm.toField()
			if field.Name == "" {
				m.showErrorf("Field name is required")
				return m, nil
			}
			m.fieldForm.submitting = true
			return m, m.cmdSaveField(field, m.fieldForm.editing, m.fieldForm.originName)
		}
	}

	var cmd tea.Cmd
	m.fieldForm.inputs[m.fieldForm.focus], cmd = m.fieldForm.inputs[m.fieldForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateLookup(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.lookup.submitting {
				return m, nil
			}
			userID, err := strconv.ParseInt(strings.TrimSpace(m.lookup.input.Value()), 10, 64)
			if err != nil || userID <= 0 {
				m.showErrorf("Enter a numeric user ID")
				return m, nil
			}
			m.lookup.submitting = true
			return m, m.cmdLoadPeer(userID)
		}
	}

	var cmd tea.Cmd
	m.lookup.input, cmd = m.lookup.input.Update(msg)
	return m, cmd
}

func (m appModel) updatePeer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.up):
		if m.peer.idx > 0 {
			m.peer.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.peer.idx < len(m.peer.fields)-1 {
			m.peer.idx++
		}
	case key.Matches(keyMsg, keys.copy):
		field, ok := m.peer.current()
		if !ok || field.Value == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(field.Value)
	}

	return m, nil
}

func (m appModel) updateTeamForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.teamForm.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.teamForm.input.Value())
			if name == "" {
				m.showErrorf("Team name is required")
				return m, nil
			}
			m.teamForm.submitting = true
			return m, m.cmdCreateTeam(name)
		}
	}

	var cmd tea.Cmd
	m.teamForm.input, cmd = m.teamForm.input.Update(msg)
	return m, cmd
}

func (m appModel) updateMemberForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.memberForm = focusNextMemberForm(m.memberForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.memberForm = focusPrevMemberForm(m.memberForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.memberForm.submitting {
				return m, nil
			}
			teamID, errTeam := strconv.ParseInt(strings.TrimSpace(m.memberForm.inputs[0].Value()), 10, 64)
			userID, errUser := strconv.ParseInt(strings.TrimSpace(m.memberForm.inputs[1].Value()), 10, 64)
			if errTeam != nil || errUser != nil || teamID <= 0 || userID <= 0 {
				m.showErrorf("Enter numeric team and user IDs")
				return m, nil
			}
			m.memberForm.submitting = true
			m.memberForm.status = ""
			return m, m.cmdAddMember(teamID, userID)
		}
	}

	var cmd tea.Cmd
	m.memberForm.inputs[m.memberForm.focus], cmd = m.memberForm.inputs[m.memberForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		authed, err := server.Login(ctx, user)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{user: authed}
	}
}

func (m appModel) cmdRegister(user models.User) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		authed, err := server.Register(ctx, user)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{user: authed}
	}
}

func (m appModel) cmdLoadFields() tea.Cmd {
	ctx := m.ctx
	server := m.server
	userID := m.user.UserID
	return func() tea.Msg {
		richInfo, err := server.GetRichInfo(ctx, userID)
		return fieldsLoadedMsg{fields: richInfo.Fields, err: err}
	}
}

// cmdSaveField replaces the whole field set on the server: the stored set is
// always a full snapshot, so an edit rewrites the slice with the updated
// field in place and a create appends it.
func (m appModel) cmdSaveField(field models.RichField, editing bool, originName string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	fields := make([]models.RichField, 0, len(m.list.fields)+1)
	replaced := false
	for _, f := range m.list.fields {
		if editing && f.Name == originName {
			fields = append(fields, field)
			replaced = true
			continue
		}
		fields = append(fields, f)
	}
	if !replaced {
		fields = append(fields, field)
	}

	return func() tea.Msg {
		err := server.SetRichInfo(ctx, fields)
		return fieldsSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteField(name string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	fields := make([]models.RichField, 0, len(m.list.fields))
	for _, f := range m.list.fields {
		if f.Name == name {
			continue
		}
		fields = append(fields, f)
	}

	return func() tea.Msg {
		err := server.SetRichInfo(ctx, fields)
		return fieldsSavedMsg{err: err}
	}
}

func (m appModel) cmdLoadPeer(userID int64) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		richInfo, err := server.GetRichInfo(ctx, userID)
		return peerLoadedMsg{userID: userID, fields: richInfo.Fields, err: err}
	}
}

func (m appModel) cmdCreateTeam(name string) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		team, err := server.CreateTeam(ctx, models.Team{Name: name})
		return teamCreatedMsg{team: team, err: err}
	}
}

func (m appModel) cmdAddMember(teamID, userID int64) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		err := server.AddTeamMember(ctx, teamID, userID)
		return memberAddedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return fieldsSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextFieldForm(m fieldFormModel) fieldFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevFieldForm(m fieldFormModel) fieldFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextMemberForm(m memberFormModel) memberFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevMemberForm(m memberFormModel) memberFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
