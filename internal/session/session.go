// Package session holds the process-lifetime record of who is signed in.
// Nothing here persists across restarts; the zero value is "signed out".
package session

// Session identifies the currently authenticated user. Views read it; only
// the navigation layer writes it, at login and logout.
type Session struct {
	Username      string
	Authenticated bool
}

// Authenticated returns a live session for username.
func Authenticated(username string) Session {
	return Session{Username: username, Authenticated: true}
}

// Guest returns the session used when login is skipped: a named identity
// without authentication.
func Guest() Session {
	return Session{Username: "Guest"}
}

// Clear returns the signed-out session.
func Clear() Session {
	return Session{}
}
