package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"lethimcook/internal/api"
)

type settingsModel struct {
	instance uuid.UUID
	dialog   *passwordDialog
	notice   string
}

func newSettingsModel() *settingsModel {
	return &settingsModel{instance: uuid.New()}
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sv := m.settings
	if sv == nil {
		return m, nil
	}

	if sv.dialog != nil {
		submitted, closed, cmd := sv.dialog.handleKey(msg)
		if closed {
			sv.dialog = nil
			return m, nil
		}
		if submitted {
			if sv.dialog.kind == pwChangePassword {
				return m, m.submitChangePassword()
			}
			return m, m.submitDeleteAccount(sv.dialog, sv.instance, m.sess.Username)
		}
		return m, cmd
	}

	switch msg.String() {
	case "p":
		sv.notice = ""
		sv.dialog = newPasswordDialog(pwChangePassword)
		return m, textinput.Blink
	case "d":
		sv.notice = ""
		sv.dialog = newPasswordDialog(pwDeleteAccount)
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) submitChangePassword() tea.Cmd {
	sv := m.settings
	d := sv.dialog
	if d.busy {
		return nil
	}
	current := d.inputs[0].Value()
	updated := d.inputs[1].Value()
	confirm := d.inputs[2].Value()
	if current == "" || updated == "" || confirm == "" {
		d.errMsg = msgFieldsRequired
		return nil
	}
	if updated != confirm {
		d.errMsg = msgPasswordsDiffer
		return nil
	}
	if problems := validatePassword(updated); len(problems) > 0 {
		d.errMsg = problems[0]
		return nil
	}
	d.busy = true
	d.errMsg = ""
	return changePasswordCmd(m.ctx, m.client, sv.instance, m.sess.Username, current, updated)
}

func changePasswordCmd(ctx context.Context, client *api.Client, instance uuid.UUID, username, current, updated string) tea.Cmd {
	return func() tea.Msg {
		err := client.ChangePassword(ctx, username, current, updated)
		return passwordChangedMsg{instance: instance, err: err}
	}
}

func (m Model) applyPasswordChanged(msg passwordChangedMsg) (tea.Model, tea.Cmd) {
	sv := m.settings
	if sv == nil || sv.instance != msg.instance || sv.dialog == nil {
		return m, nil
	}
	d := sv.dialog
	d.busy = false
	if msg.err != nil {
		if errors.Is(msg.err, api.ErrUnauthorized) {
			d.errMsg = msgWrongCurrentPassword
		} else {
			d.errMsg = authErrorText(msg.err)
		}
		return m, nil
	}
	sv.dialog = nil
	sv.notice = msgPasswordChanged
	return m, nil
}

func (m Model) viewSettings() string {
	sv := m.settings
	s := m.styles

	if sv.dialog != nil {
		title := "Delete account"
		if sv.dialog.kind == pwChangePassword {
			title = "Change password"
		}
		return m.viewPasswordDialog(sv.dialog, title)
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Settings") + "\n\n")
	b.WriteString(s.Label.Render("Theme") + "\n" + m.theme.Name + "\n\n")
	if sv.notice != "" {
		b.WriteString(s.Success.Render(sv.notice) + "\n\n")
	}
	b.WriteString(s.Muted.Render("p change password · d delete account · T cycle theme"))
	return b.String()
}

type passwordChangedMsg struct {
	instance uuid.UUID
	err      error
}
