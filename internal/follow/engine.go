// Package follow implements the relationship sync engine behind the Search
// view: a local mirror of "who do I follow" over the current search results.
//
// The mirror is never authoritative. It is rebuilt from scratch for every
// completed search and mutated only after the server confirms a follow or
// unfollow. Because searches overlap (the user keeps typing while checks for
// the previous query are in flight), every search is tagged with a
// monotonically increasing generation and only results carrying the current
// generation are applied; stale batches are discarded, never merged.
package follow

// Result is the outcome of one completed search: usernames in server order
// and the followed-state for each.
type Result struct {
	Users     []string
	Following map[string]bool
}

// Mirror holds the relationship state for one Search view instance. It is
// mutated only from the UI's update loop; the generation gate is the only
// concurrency discipline it needs.
type Mirror struct {
	gen       uint64
	users     []string
	following map[string]bool
}

// NewMirror returns an empty mirror.
func NewMirror() *Mirror {
	return &Mirror{following: make(map[string]bool)}
}

// Begin starts a new search and returns its generation. An empty query is
// resolved immediately: results and mirror are cleared with no remote call,
// and any in-flight batch from an earlier query is implicitly invalidated.
func (m *Mirror) Begin(query string) uint64 {
	m.gen++
	if query == "" {
		m.users = nil
		m.following = make(map[string]bool)
	}
	return m.gen
}

// Apply installs a completed search result. It reports false and leaves the
// mirror untouched unless gen is the current generation.
func (m *Mirror) Apply(gen uint64, res Result) bool {
	if gen != m.gen {
		return false
	}
	m.users = append([]string(nil), res.Users...)
	m.following = make(map[string]bool, len(res.Following))
	for user, ok := range res.Following {
		m.following[user] = ok
	}
	return true
}

// ApplyFollow flips username to followed. Call only after the server
// confirmed the follow; a failed call must leave the mirror as it was.
func (m *Mirror) ApplyFollow(username string) {
	if m.contains(username) {
		m.following[username] = true
	}
}

// ApplyUnfollow flips username to not-followed after server confirmation.
func (m *Mirror) ApplyUnfollow(username string) {
	if m.contains(username) {
		m.following[username] = false
	}
}

// Users returns the current result set in server order.
func (m *Mirror) Users() []string {
	return m.users
}

// Following reports whether username is currently followed.
func (m *Mirror) Following(username string) bool {
	return m.following[username]
}

// Len returns the number of users in the current result set.
func (m *Mirror) Len() int {
	return len(m.users)
}

func (m *Mirror) contains(username string) bool {
	_, ok := m.following[username]
	return ok
}
