package ui

// View identifies which screen the application is showing. Exactly one
// view is mounted at any time.
type View int

const (
	ViewLogin View = iota
	ViewSignup
	ViewHome
	ViewSearch
	ViewOwnRecipes
	ViewSavedRecipes
	ViewMealPlanner
	ViewNotifications
	ViewProfile
	ViewSettings
	ViewOtherProfile
)

func (v View) String() string {
	switch v {
	case ViewLogin:
		return "Login"
	case ViewSignup:
		return "Sign Up"
	case ViewHome:
		return "Home"
	case ViewSearch:
		return "Search"
	case ViewOwnRecipes:
		return "My Recipes"
	case ViewSavedRecipes:
		return "Saved Recipes"
	case ViewMealPlanner:
		return "Meal Planner"
	case ViewNotifications:
		return "Notifications"
	case ViewProfile:
		return "Profile"
	case ViewSettings:
		return "Settings"
	case ViewOtherProfile:
		return "Profile"
	default:
		return "Unknown"
	}
}

// navEntry is one sidebar destination reachable by its number key.
type navEntry struct {
	key  string
	view View
}

// navEntries lists the sidebar destinations in display order.
var navEntries = []navEntry{
	{"1", ViewHome},
	{"2", ViewSearch},
	{"3", ViewOwnRecipes},
	{"4", ViewSavedRecipes},
	{"5", ViewMealPlanner},
	{"6", ViewNotifications},
	{"7", ViewProfile},
	{"8", ViewSettings},
}
