package ui

import (
	"testing"

	"lethimcook/internal/api"
	"lethimcook/internal/session"
)

func authedModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{})
	m = drive(t, m, loginResultMsg{instance: m.login.instance, username: "alice"})
	if m.view != ViewHome {
		t.Fatal("login did not reach home")
	}
	return m
}

func TestSettings_ChangePasswordSuccess(t *testing.T) {
	m := drive(t, authedModel(t), key("8"), key("p"))
	d := m.settings.dialog
	if d == nil || d.kind != pwChangePassword {
		t.Fatal("change-password dialog not opened")
	}
	d.inputs[0].SetValue("Old3r!pass")
	d.inputs[1].SetValue("Sup3r!pass")
	d.inputs[2].SetValue("Sup3r!pass")
	m = drive(t, m, key("enter"))
	if !m.settings.dialog.busy {
		t.Fatal("submit did not mark the dialog busy")
	}

	m = drive(t, m, passwordChangedMsg{instance: m.settings.instance})
	if m.settings.dialog != nil {
		t.Fatal("dialog still open after success")
	}
	if m.settings.notice != msgPasswordChanged {
		t.Fatalf("notice = %q, want %q", m.settings.notice, msgPasswordChanged)
	}
}

func TestSettings_ChangePasswordWrongCurrent(t *testing.T) {
	m := drive(t, authedModel(t), key("8"), key("p"))
	d := m.settings.dialog
	d.inputs[0].SetValue("Wrong1!pass")
	d.inputs[1].SetValue("Sup3r!pass")
	d.inputs[2].SetValue("Sup3r!pass")
	m = drive(t, m, key("enter"))

	m = drive(t, m, passwordChangedMsg{instance: m.settings.instance, err: api.ErrUnauthorized})
	d = m.settings.dialog
	if d == nil {
		t.Fatal("dialog closed on failure")
	}
	if d.errMsg != msgWrongCurrentPassword {
		t.Fatalf("errMsg = %q, want %q", d.errMsg, msgWrongCurrentPassword)
	}
}

func TestSettings_NewPasswordMustPassRules(t *testing.T) {
	m := drive(t, authedModel(t), key("8"), key("p"))
	d := m.settings.dialog
	d.inputs[0].SetValue("Old3r!pass")
	d.inputs[1].SetValue("weak")
	d.inputs[2].SetValue("weak")
	m = drive(t, m, key("enter"))
	if m.settings.dialog.busy {
		t.Fatal("invalid new password must not reach the server")
	}
	if m.settings.dialog.errMsg == "" {
		t.Fatal("missing validation message")
	}
}

func TestSettings_NewPasswordMustMatchConfirm(t *testing.T) {
	m := drive(t, authedModel(t), key("8"), key("p"))
	d := m.settings.dialog
	d.inputs[0].SetValue("Old3r!pass")
	d.inputs[1].SetValue("Sup3r!pass")
	d.inputs[2].SetValue("Sup3r!pasz")
	m = drive(t, m, key("enter"))
	if m.settings.dialog.busy {
		t.Fatal("mismatched confirm must not reach the server")
	}
	if m.settings.dialog.errMsg != msgPasswordsDiffer {
		t.Fatalf("errMsg = %q, want %q", m.settings.dialog.errMsg, msgPasswordsDiffer)
	}
}

func TestProfile_DeleteAccountReturnsToLogin(t *testing.T) {
	m := drive(t, authedModel(t), key("7"), key("d"))
	d := m.profile.dialog
	if d == nil || d.kind != pwDeleteAccount {
		t.Fatal("delete-account dialog not opened")
	}
	d.inputs[0].SetValue("Sup3r!pass")
	m = drive(t, m, key("enter"))

	m = drive(t, m, accountDeletedMsg{instance: m.profile.instance})
	if m.view != ViewLogin {
		t.Fatalf("view = %v, want %v", m.view, ViewLogin)
	}
	if m.sess != session.Clear() {
		t.Fatalf("session = %+v, want cleared", m.sess)
	}
}

func TestProfile_DeleteAccountWrongPassword(t *testing.T) {
	m := drive(t, authedModel(t), key("7"), key("d"))
	m.profile.dialog.inputs[0].SetValue("Wrong1!pass")
	m = drive(t, m, key("enter"))

	m = drive(t, m, accountDeletedMsg{instance: m.profile.instance, err: api.ErrUnauthorized})
	if m.view != ViewProfile {
		t.Fatalf("view = %v, want %v", m.view, ViewProfile)
	}
	d := m.profile.dialog
	if d == nil || d.errMsg != msgWrongPassword {
		t.Fatalf("dialog = %+v, want %q", d, msgWrongPassword)
	}
}

func TestSettings_DeleteAccountAlsoWorks(t *testing.T) {
	m := drive(t, authedModel(t), key("8"), key("d"))
	d := m.settings.dialog
	if d == nil || d.kind != pwDeleteAccount {
		t.Fatal("delete-account dialog not opened from settings")
	}
	d.inputs[0].SetValue("Sup3r!pass")
	m = drive(t, m, key("enter"))

	m = drive(t, m, accountDeletedMsg{instance: m.settings.instance})
	if m.view != ViewLogin {
		t.Fatalf("view = %v, want %v", m.view, ViewLogin)
	}
}
