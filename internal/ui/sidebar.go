package ui

import (
	"strings"
)

func (m Model) renderSidebar() string {
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("LetHimCook") + "\n")
	b.WriteString(s.Muted.Render(m.sess.Username) + "\n\n")

	for _, e := range navEntries {
		label := e.key + " " + e.view.String()
		if m.view == e.view {
			b.WriteString(s.NavActive.Render("▸ " + label))
		} else {
			b.WriteString(s.NavItem.Render("  " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + s.Muted.Render("L Log Out"))
	return s.Sidebar.Render(b.String())
}

func (m Model) renderFooter() string {
	s := m.styles

	hint := "1-8 navigate · T theme · L log out · q quit"
	switch m.view {
	case ViewSearch:
		hint = "/ search · j/k move · f follow · enter profile · " + hint
	case ViewOwnRecipes:
		hint = "a add · enter open · e edit · d delete · r refresh · " + hint
	case ViewProfile:
		hint = "d delete account · " + hint
	case ViewSettings:
		hint = "p password · d delete account · " + hint
	case ViewOtherProfile:
		hint = "esc back · " + hint
	}
	return s.Help.Render(hint)
}
