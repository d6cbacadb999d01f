package ui

import "strings"

// The placeholder screens below are mounted like any other view but hold
// no state and make no server calls.

func (m Model) viewHome() string {
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Welcome, "+m.sess.Username+"!") + "\n\n")
	b.WriteString(s.NavItem.Render("Find cooks to follow under Search, or add your") + "\n")
	b.WriteString(s.NavItem.Render("own dishes under My Recipes.") + "\n\n")
	b.WriteString(s.Muted.Render("A feed of recipes from people you follow will appear here."))
	return b.String()
}

func (m Model) viewSavedRecipes() string {
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Saved Recipes") + "\n\n")
	b.WriteString(s.Muted.Render("Bookmarking other cooks' recipes is not available yet."))
	return b.String()
}

func (m Model) viewMealPlanner() string {
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Meal Planner") + "\n\n")
	b.WriteString(s.Muted.Render("Weekly meal planning is not available yet."))
	return b.String()
}

func (m Model) viewNotifications() string {
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Notifications") + "\n\n")
	b.WriteString(s.Muted.Render("You have no notifications."))
	return b.String()
}
