package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"lethimcook/internal/api"
	"lethimcook/internal/session"
)

const (
	msgWrongCurrentPassword = "Incorrect current password."
	msgPasswordChanged      = "Password changed successfully."
)

type passwordDialogKind int

const (
	pwDeleteAccount passwordDialogKind = iota
	pwChangePassword
)

// passwordDialog asks for the account password before a destructive or
// credential-changing call. Change-password carries a second input for
// the new password.
type passwordDialog struct {
	kind   passwordDialogKind
	inputs []textinput.Model
	focus  int
	busy   bool
	errMsg string
}

func newPasswordDialog(kind passwordDialogKind) *passwordDialog {
	current := textinput.New()
	current.Placeholder = "password"
	current.CharLimit = 64
	current.EchoMode = textinput.EchoPassword
	current.EchoCharacter = '•'
	current.Focus()

	d := &passwordDialog{kind: kind, inputs: []textinput.Model{current}}
	if kind == pwChangePassword {
		d.inputs[0].Placeholder = "current password"
		for _, placeholder := range []string{"new password", "confirm new password"} {
			in := textinput.New()
			in.Placeholder = placeholder
			in.CharLimit = 64
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
			d.inputs = append(d.inputs, in)
		}
	}
	return d
}

func (d *passwordDialog) setFocus(i int) {
	d.focus = i
	for j := range d.inputs {
		if j == i {
			d.inputs[j].Focus()
		} else {
			d.inputs[j].Blur()
		}
	}
}

func (d *passwordDialog) handleKey(msg tea.KeyMsg) (submitted, closed bool, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		return false, true, nil
	case "tab", "down":
		d.setFocus((d.focus + 1) % len(d.inputs))
		return false, false, nil
	case "shift+tab", "up":
		d.setFocus((d.focus + len(d.inputs) - 1) % len(d.inputs))
		return false, false, nil
	case "enter":
		return true, false, nil
	}
	var c tea.Cmd
	d.inputs[d.focus], c = d.inputs[d.focus].Update(msg)
	return false, false, c
}

type profileModel struct {
	instance uuid.UUID
	username string
	dialog   *passwordDialog
}

func newProfileModel(username string) *profileModel {
	return &profileModel{instance: uuid.New(), username: username}
}

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pv := m.profile
	if pv == nil {
		return m, nil
	}

	if pv.dialog != nil {
		submitted, closed, cmd := pv.dialog.handleKey(msg)
		if closed {
			pv.dialog = nil
			return m, nil
		}
		if submitted {
			return m, m.submitDeleteAccount(pv.dialog, pv.instance, pv.username)
		}
		return m, cmd
	}

	if msg.String() == "d" {
		pv.dialog = newPasswordDialog(pwDeleteAccount)
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) submitDeleteAccount(d *passwordDialog, instance uuid.UUID, username string) tea.Cmd {
	if d.busy {
		return nil
	}
	password := d.inputs[0].Value()
	if password == "" {
		d.errMsg = msgFieldsRequired
		return nil
	}
	d.busy = true
	d.errMsg = ""
	return deleteAccountCmd(m.ctx, m.client, instance, username, password)
}

func deleteAccountCmd(ctx context.Context, client *api.Client, instance uuid.UUID, username, password string) tea.Cmd {
	return func() tea.Msg {
		err := client.DeleteUser(ctx, username, password)
		return accountDeletedMsg{instance: instance, err: err}
	}
}

func (m Model) applyAccountDeleted(msg accountDeletedMsg) (tea.Model, tea.Cmd) {
	var d *passwordDialog
	switch {
	case m.profile != nil && m.profile.instance == msg.instance:
		d = m.profile.dialog
	case m.settings != nil && m.settings.instance == msg.instance:
		d = m.settings.dialog
	default:
		return m, nil
	}
	if d == nil {
		return m, nil
	}
	d.busy = false
	if msg.err != nil {
		d.errMsg = authErrorText(msg.err)
		return m, nil
	}
	m.sess = session.Clear()
	return m, m.navigate(ViewLogin)
}

func (m Model) viewProfile() string {
	pv := m.profile
	s := m.styles

	if pv.dialog != nil {
		return m.viewPasswordDialog(pv.dialog, "Delete account")
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Profile") + "\n\n")
	b.WriteString(s.Label.Render("Username") + "\n" + pv.username + "\n\n")
	b.WriteString(s.Muted.Render("d delete account"))
	return b.String()
}

func (m Model) viewPasswordDialog(d *passwordDialog, title string) string {
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Subtitle.Render(title) + "\n\n")
	for i := range d.inputs {
		b.WriteString(d.inputs[i].View() + "\n")
	}
	if d.errMsg != "" {
		b.WriteString("\n" + s.Error.Render(d.errMsg) + "\n")
	}
	b.WriteString("\n" + s.Muted.Render("enter confirm · esc cancel"))
	return s.Dialog.Render(b.String())
}

type accountDeletedMsg struct {
	instance uuid.UUID
	err      error
}
