package ui

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"lethimcook/internal/api"
)

const (
	msgUsernameTaken   = "Username is already in use. Please choose another one."
	msgSignupSucceeded = "User created successfully! You can now log in."
	msgPasswordsDiffer = "Passwords do not match."
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type signupModel struct {
	instance uuid.UUID
	inputs   [3]textinput.Model
	focus    int
	busy     bool
	errMsgs  []string
}

func newSignupModel() *signupModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.CharLimit = 64
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'

	return &signupModel{
		instance: uuid.New(),
		inputs:   [3]textinput.Model{username, password, confirm},
	}
}

func (sm *signupModel) setFocus(i int) {
	sm.focus = i
	for j := range sm.inputs {
		if j == i {
			sm.inputs[j].Focus()
		} else {
			sm.inputs[j].Blur()
		}
	}
}

// validateUsername returns the rule violations for a proposed username.
func validateUsername(username string) []string {
	var problems []string
	if len(username) < 3 {
		problems = append(problems, "Username must be at least 3 characters long.")
	}
	if username != "" && !usernamePattern.MatchString(username) {
		problems = append(problems, "Username can only contain letters, numbers, and underscores.")
	}
	return problems
}

// validatePassword returns the rule violations for a proposed password.
func validatePassword(password string) []string {
	var problems []string
	if len(password) < 8 || len(password) > 20 {
		problems = append(problems, "Password must be between 8 and 20 characters long.")
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	if !lower {
		problems = append(problems, "Password must contain at least one lowercase letter.")
	}
	if !upper {
		problems = append(problems, "Password must contain at least one uppercase letter.")
	}
	if !digit {
		problems = append(problems, "Password must contain at least one digit.")
	}
	if !special {
		problems = append(problems, "Password must contain at least one special character.")
	}
	return problems
}

func (m Model) handleSignupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sm := m.signup
	if sm == nil {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, m.navigate(ViewLogin)
	case "tab", "down":
		sm.setFocus((sm.focus + 1) % len(sm.inputs))
		return m, nil
	case "shift+tab", "up":
		sm.setFocus((sm.focus + len(sm.inputs) - 1) % len(sm.inputs))
		return m, nil
	case "enter":
		return m, m.submitSignup()
	}

	var cmd tea.Cmd
	sm.inputs[sm.focus], cmd = sm.inputs[sm.focus].Update(msg)
	return m, cmd
}

func (m Model) submitSignup() tea.Cmd {
	sm := m.signup
	if sm.busy {
		return nil
	}
	username := strings.TrimSpace(sm.inputs[0].Value())
	password := sm.inputs[1].Value()
	confirm := sm.inputs[2].Value()

	if username == "" || password == "" || confirm == "" {
		sm.errMsgs = []string{msgFieldsRequired}
		return nil
	}
	var problems []string
	problems = append(problems, validateUsername(username)...)
	problems = append(problems, validatePassword(password)...)
	if password != confirm {
		problems = append(problems, msgPasswordsDiffer)
	}
	if len(problems) > 0 {
		sm.errMsgs = problems
		return nil
	}

	sm.busy = true
	sm.errMsgs = nil
	return signupCmd(m.ctx, m.client, sm.instance, username, password)
}

func signupCmd(ctx context.Context, client *api.Client, instance uuid.UUID, username, password string) tea.Cmd {
	return func() tea.Msg {
		err := client.Signup(ctx, username, password)
		return signupResultMsg{instance: instance, err: err}
	}
}

func (m Model) applySignupResult(msg signupResultMsg) (tea.Model, tea.Cmd) {
	sm := m.signup
	if sm == nil || sm.instance != msg.instance {
		return m, nil
	}
	sm.busy = false
	if msg.err == nil {
		cmd := m.navigate(ViewLogin)
		m.login.notice = msgSignupSucceeded
		return m, cmd
	}

	var conflict *api.ConflictError
	if errors.As(msg.err, &conflict) {
		sm.errMsgs = []string{msgUsernameTaken}
		if conflict.Message != "" {
			sm.errMsgs = append(sm.errMsgs, conflict.Message)
		}
	} else {
		sm.errMsgs = []string{authErrorText(msg.err)}
	}
	return m, nil
}

func (m Model) viewSignup() string {
	sm := m.signup
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Create an account"))
	b.WriteString("\n\n")
	b.WriteString(s.Label.Render("Username") + "\n" + sm.inputs[0].View() + "\n")
	b.WriteString(s.Label.Render("Password") + "\n" + sm.inputs[1].View() + "\n")
	b.WriteString(s.Label.Render("Confirm Password") + "\n" + sm.inputs[2].View() + "\n")
	for _, e := range sm.errMsgs {
		b.WriteString("\n" + s.Error.Render(e))
	}
	b.WriteString("\n\n" + s.Muted.Render("enter sign up · esc back to login"))

	box := s.Box.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

type signupResultMsg struct {
	instance uuid.UUID
	err      error
}
