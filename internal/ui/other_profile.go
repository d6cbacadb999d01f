package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// otherProfileModel shows another user's public profile, read only.
type otherProfileModel struct {
	username string
}

func newOtherProfileModel(username string) *otherProfileModel {
	return &otherProfileModel{username: username}
}

func (m Model) handleOtherProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.navigate(ViewHome)
	}
	return m, nil
}

func (m Model) viewOtherProfile() string {
	pv := m.otherProfile
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render(pv.username) + "\n\n")
	b.WriteString(s.Muted.Render("Public recipes are coming to profiles soon.") + "\n\n")
	b.WriteString(s.Muted.Render("esc back to home"))
	return b.String()
}
