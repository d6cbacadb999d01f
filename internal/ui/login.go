package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"lethimcook/internal/api"
	"lethimcook/internal/session"
	"lethimcook/internal/state"
)

const statusRefreshInterval = 5 * time.Second

const (
	msgUserNotFound      = "User does not exist. Please check the username."
	msgWrongPassword     = "Incorrect password. Please try again."
	msgServerUnreachable = "Unable to connect to the server. Please try again later."
	msgFieldsRequired    = "All fields are required."
	msgUnexpected        = "An unexpected error occurred. Please try again later."
)

type loginModel struct {
	instance uuid.UUID
	inputs   [2]textinput.Model
	focus    int
	busy     bool
	errMsg   string
	notice   string
	status   state.Snapshot
}

func newLoginModel(status *state.Store) *loginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	l := &loginModel{
		instance: uuid.New(),
		inputs:   [2]textinput.Model{username, password},
	}
	if status != nil {
		l.status = status.Snapshot()
	}
	return l
}

func (l *loginModel) setFocus(i int) {
	l.focus = i
	for j := range l.inputs {
		if j == i {
			l.inputs[j].Focus()
		} else {
			l.inputs[j].Blur()
		}
	}
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	l := m.login
	if l == nil {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+n":
		return m, m.navigate(ViewSignup)
	case "tab", "down":
		l.setFocus((l.focus + 1) % len(l.inputs))
		return m, nil
	case "shift+tab", "up":
		l.setFocus((l.focus + len(l.inputs) - 1) % len(l.inputs))
		return m, nil
	case "enter":
		return m, m.submitLogin()
	}

	var cmd tea.Cmd
	l.inputs[l.focus], cmd = l.inputs[l.focus].Update(msg)
	return m, cmd
}

func (m Model) submitLogin() tea.Cmd {
	l := m.login
	if l.busy {
		return nil
	}
	username := strings.TrimSpace(l.inputs[0].Value())
	password := l.inputs[1].Value()
	if username == "" || password == "" {
		l.errMsg = msgFieldsRequired
		return nil
	}

	l.busy = true
	l.errMsg = ""
	l.notice = ""
	return loginCmd(m.ctx, m.client, l.instance, username, password)
}

func loginCmd(ctx context.Context, client *api.Client, instance uuid.UUID, username, password string) tea.Cmd {
	return func() tea.Msg {
		err := client.Login(ctx, username, password)
		return loginResultMsg{instance: instance, username: username, err: err}
	}
}

func (m Model) applyLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	l := m.login
	if l == nil || l.instance != msg.instance {
		return m, nil
	}
	l.busy = false
	if msg.err != nil {
		l.errMsg = authErrorText(msg.err)
		return m, nil
	}
	m.sess = session.Authenticated(msg.username)
	return m, m.navigate(ViewHome)
}

// authErrorText maps a client error to the message shown to the user.
func authErrorText(err error) string {
	var netErr *api.NetworkError
	switch {
	case errors.Is(err, api.ErrNotFound):
		return msgUserNotFound
	case errors.Is(err, api.ErrUnauthorized):
		return msgWrongPassword
	case errors.As(err, &netErr):
		return msgServerUnreachable
	default:
		return msgUnexpected
	}
}

func (m Model) viewLogin() string {
	l := m.login
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("LetHimCook"))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("Share what you cook."))
	b.WriteString("\n\n")
	b.WriteString(s.Label.Render("Username") + "\n" + l.inputs[0].View() + "\n")
	b.WriteString(s.Label.Render("Password") + "\n" + l.inputs[1].View() + "\n")
	if l.errMsg != "" {
		b.WriteString("\n" + s.Error.Render(l.errMsg) + "\n")
	}
	if l.notice != "" {
		b.WriteString("\n" + s.Success.Render(l.notice) + "\n")
	}
	b.WriteString("\n" + s.Muted.Render("enter log in · ctrl+n sign up · ctrl+c quit"))
	b.WriteString("\n\n" + m.renderServerStatus())

	box := s.Box.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m Model) renderServerStatus() string {
	s := m.styles
	st := m.login.status
	switch {
	case !st.Checked:
		return s.Muted.Render("Server Status: Checking...")
	case st.Up:
		return s.Success.Render("Server Status: Online")
	case st.IsOffline():
		return s.Error.Render("Server Status: Offline")
	default:
		return s.Warning.Render("Server Status: Unreachable")
	}
}

func statusTick() tea.Cmd {
	return tea.Tick(statusRefreshInterval, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}

type statusTickMsg struct{}

type loginResultMsg struct {
	instance uuid.UUID
	username string
	err      error
}
