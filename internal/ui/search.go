package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"lethimcook/internal/api"
	"lethimcook/internal/follow"
)

type searchModel struct {
	instance  uuid.UUID
	self      string
	input     textinput.Model
	mirror    *follow.Mirror
	cursor    int
	searching bool
	errMsg    string
}

func newSearchModel(self string) *searchModel {
	input := textinput.New()
	input.Placeholder = "search users"
	input.CharLimit = 64
	input.Focus()

	return &searchModel{
		instance: uuid.New(),
		self:     self,
		input:    input,
		mirror:   follow.NewMirror(),
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sv := m.search
	if sv == nil {
		return m, nil
	}

	if sv.input.Focused() {
		switch msg.String() {
		case "esc", "enter":
			sv.input.Blur()
			return m, nil
		}
		before := sv.input.Value()
		var cmd tea.Cmd
		sv.input, cmd = sv.input.Update(msg)
		if sv.input.Value() != before {
			return m, tea.Batch(cmd, m.beginSearch())
		}
		return m, cmd
	}

	switch msg.String() {
	case "/":
		sv.input.Focus()
		return m, textinput.Blink
	case "j", "down":
		if sv.cursor < sv.mirror.Len()-1 {
			sv.cursor++
		}
		return m, nil
	case "k", "up":
		if sv.cursor > 0 {
			sv.cursor--
		}
		return m, nil
	case "f":
		return m, m.toggleFollow()
	case "enter":
		users := sv.mirror.Users()
		if sv.cursor < len(users) {
			return m, m.navigateProfileOf(users[sv.cursor])
		}
		return m, nil
	}
	return m, nil
}

// beginSearch advances the search generation and launches the fetch for
// the current query. An empty query clears the results in place.
func (m Model) beginSearch() tea.Cmd {
	sv := m.search
	query := strings.TrimSpace(sv.input.Value())
	gen := sv.mirror.Begin(query)
	sv.errMsg = ""
	if query == "" {
		sv.searching = false
		sv.cursor = 0
		return nil
	}
	sv.searching = true
	return searchCmd(m.ctx, m.client, sv.instance, gen, sv.self, query)
}

func searchCmd(ctx context.Context, client *api.Client, instance uuid.UUID, gen uint64, self, query string) tea.Cmd {
	return func() tea.Msg {
		res, err := follow.Fetch(ctx, client, self, query)
		return searchResultMsg{instance: instance, gen: gen, result: res, err: err}
	}
}

func (m Model) applySearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	sv := m.search
	if sv == nil || sv.instance != msg.instance {
		return m, nil
	}
	if msg.err != nil {
		if sv.mirror.Apply(msg.gen, follow.Result{}) {
			sv.searching = false
			sv.cursor = 0
			sv.errMsg = authErrorText(msg.err)
		}
		return m, nil
	}
	if sv.mirror.Apply(msg.gen, msg.result) {
		sv.searching = false
		if sv.cursor >= sv.mirror.Len() {
			sv.cursor = 0
		}
	}
	return m, nil
}

func (m Model) toggleFollow() tea.Cmd {
	sv := m.search
	users := sv.mirror.Users()
	if sv.cursor >= len(users) {
		return nil
	}
	target := users[sv.cursor]
	unfollow := sv.mirror.Following(target)
	return followCmd(m.ctx, m.client, sv.instance, sv.self, target, unfollow)
}

func followCmd(ctx context.Context, client *api.Client, instance uuid.UUID, self, target string, unfollow bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if unfollow {
			err = client.Unfollow(ctx, self, target)
		} else {
			err = client.Follow(ctx, self, target)
		}
		return followResultMsg{instance: instance, username: target, followed: !unfollow, err: err}
	}
}

func (m Model) applyFollowResult(msg followResultMsg) (tea.Model, tea.Cmd) {
	sv := m.search
	if sv == nil || sv.instance != msg.instance {
		return m, nil
	}
	if msg.err != nil {
		sv.errMsg = authErrorText(msg.err)
		return m, nil
	}
	if msg.followed {
		sv.mirror.ApplyFollow(msg.username)
	} else {
		sv.mirror.ApplyUnfollow(msg.username)
	}
	return m, nil
}

func (m Model) viewSearch() string {
	sv := m.search
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Search") + "\n\n")
	b.WriteString(sv.input.View() + "\n\n")

	switch {
	case sv.errMsg != "":
		b.WriteString(s.Error.Render(sv.errMsg))
	case sv.searching:
		b.WriteString(s.Muted.Render("Searching..."))
	case sv.mirror.Len() == 0 && strings.TrimSpace(sv.input.Value()) != "":
		b.WriteString(s.Muted.Render("No users found."))
	case sv.mirror.Len() == 0:
		b.WriteString(s.Muted.Render("Type to search for other cooks."))
	default:
		for i, u := range sv.mirror.Users() {
			badge := "follow"
			if sv.mirror.Following(u) {
				badge = "following"
			}
			line := fmt.Sprintf("%s  [%s]", u, badge)
			if i == sv.cursor && !sv.input.Focused() {
				b.WriteString(s.Selected.Render(line))
			} else {
				b.WriteString(s.NavItem.Render(line))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

type searchResultMsg struct {
	instance uuid.UUID
	gen      uint64
	result   follow.Result
	err      error
}

type followResultMsg struct {
	instance uuid.UUID
	username string
	followed bool
	err      error
}
