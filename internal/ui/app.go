package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lethimcook/internal/api"
	"lethimcook/internal/prefs"
	"lethimcook/internal/session"
	"lethimcook/internal/state"
)

// Options configure the TUI.
type Options struct {
	Context   context.Context
	Client    *api.Client
	Status    *state.Store
	SkipLogin bool
	ThemeName string
	PrefsPath string
}

// Model is the root bubbletea model. It owns the session, the mounted
// view and the sub-model for that view. Navigation tears down the old
// sub-model before mounting the next one, so async completions for a
// view the user already left carry a stale instance id and are dropped.
type Model struct {
	ctx       context.Context
	client    *api.Client
	status    *state.Store
	prefsPath string

	theme  Theme
	styles Styles

	sess session.Session
	view View

	width  int
	height int
	ready  bool

	showLogout bool

	login        *loginModel
	signup       *signupModel
	search       *searchModel
	ownRecipes   *recipesModel
	profile      *profileModel
	settings     *settingsModel
	otherProfile *otherProfileModel
}

// New builds the root model. With SkipLogin set the session starts as a
// guest on the home view, otherwise on the login view.
func New(opts Options) Model {
	theme := GetTheme(opts.ThemeName)
	m := Model{
		ctx:       opts.Context,
		client:    opts.Client,
		status:    opts.Status,
		prefsPath: opts.PrefsPath,
		theme:     theme,
		styles:    theme.Styles(),
		sess:      session.Clear(),
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if opts.SkipLogin {
		m.sess = session.Guest()
		m.view = ViewHome
	} else {
		m.view = ViewLogin
		m.login = newLoginModel(opts.Status)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.view == ViewLogin {
		return statusTick()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case statusTickMsg:
		if m.view != ViewLogin || m.login == nil {
			return m, nil
		}
		if m.status != nil {
			m.login.status = m.status.Snapshot()
		}
		return m, statusTick()

	case loginResultMsg:
		return m.applyLoginResult(msg)
	case signupResultMsg:
		return m.applySignupResult(msg)
	case searchResultMsg:
		return m.applySearchResult(msg)
	case followResultMsg:
		return m.applyFollowResult(msg)
	case recipesLoadedMsg:
		return m.applyRecipesLoaded(msg)
	case recipeSavedMsg:
		return m.applyRecipeSaved(msg)
	case recipeDeletedMsg:
		return m.applyRecipeDeleted(msg)
	case passwordChangedMsg:
		return m.applyPasswordChanged(msg)
	case accountDeletedMsg:
		return m.applyAccountDeleted(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showLogout {
		return m.handleLogoutKey(msg)
	}

	switch m.view {
	case ViewLogin:
		return m.handleLoginKey(msg)
	case ViewSignup:
		return m.handleSignupKey(msg)
	}

	// Focused inputs and open dialogs consume keys before the global
	// navigation bindings.
	if m.captive() {
		return m.handleViewKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "L":
		m.showLogout = true
		return m, nil
	case "T":
		m.theme = NextTheme(m.theme.Name)
		m.styles = m.theme.Styles()
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		return m, nil
	}
	for _, e := range navEntries {
		if msg.String() == e.key {
			return m, m.navigate(e.view)
		}
	}
	return m.handleViewKey(msg)
}

// captive reports whether the mounted view is holding the keyboard, for
// example a focused text input or an open dialog.
func (m Model) captive() bool {
	switch m.view {
	case ViewSearch:
		return m.search != nil && m.search.input.Focused()
	case ViewOwnRecipes:
		return m.ownRecipes != nil && m.ownRecipes.dialog != nil
	case ViewProfile:
		return m.profile != nil && m.profile.dialog != nil
	case ViewSettings:
		return m.settings != nil && m.settings.dialog != nil
	}
	return false
}

func (m Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewSearch:
		return m.handleSearchKey(msg)
	case ViewOwnRecipes:
		return m.handleRecipesKey(msg)
	case ViewProfile:
		return m.handleProfileKey(msg)
	case ViewSettings:
		return m.handleSettingsKey(msg)
	case ViewOtherProfile:
		return m.handleOtherProfileKey(msg)
	}
	return m, nil
}

func (m Model) handleLogoutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.sess = session.Clear()
		return m, m.navigate(ViewLogin)
	case "n", "esc":
		m.showLogout = false
		return m, nil
	}
	return m, nil
}

// navigate tears down the mounted sub-model and mounts the one for v.
func (m *Model) navigate(v View) tea.Cmd {
	m.login = nil
	m.signup = nil
	m.search = nil
	m.ownRecipes = nil
	m.profile = nil
	m.settings = nil
	m.otherProfile = nil
	m.showLogout = false
	m.view = v

	switch v {
	case ViewLogin:
		m.login = newLoginModel(m.status)
		return statusTick()
	case ViewSignup:
		m.signup = newSignupModel()
	case ViewSearch:
		m.search = newSearchModel(m.sess.Username)
	case ViewOwnRecipes:
		m.ownRecipes = newRecipesModel(m.sess.Username)
		return m.loadRecipes()
	case ViewProfile:
		m.profile = newProfileModel(m.sess.Username)
	case ViewSettings:
		m.settings = newSettingsModel()
	}
	return nil
}

// navigateProfileOf mounts the read-only profile view for another user.
func (m *Model) navigateProfileOf(username string) tea.Cmd {
	cmd := m.navigate(ViewOtherProfile)
	m.otherProfile = newOtherProfileModel(username)
	return cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.view {
	case ViewLogin:
		return m.viewLogin()
	case ViewSignup:
		return m.viewSignup()
	}

	content := m.viewContent()
	if m.showLogout {
		content = m.viewLogoutDialog()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), " ", content)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

func (m Model) viewContent() string {
	switch m.view {
	case ViewHome:
		return m.viewHome()
	case ViewSearch:
		return m.viewSearch()
	case ViewOwnRecipes:
		return m.viewRecipes()
	case ViewSavedRecipes:
		return m.viewSavedRecipes()
	case ViewMealPlanner:
		return m.viewMealPlanner()
	case ViewNotifications:
		return m.viewNotifications()
	case ViewProfile:
		return m.viewProfile()
	case ViewSettings:
		return m.viewSettings()
	case ViewOtherProfile:
		return m.viewOtherProfile()
	}
	return ""
}

func (m Model) viewLogoutDialog() string {
	s := m.styles
	body := s.Subtitle.Render("Log out?") + "\n\n" +
		s.Muted.Render("y confirm · n cancel")
	return s.Dialog.Render(body)
}

// Run starts the TUI and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	return err
}
