// Package recipes implements the recipe collection sync engine behind the
// Own Recipes view: an ordered local mirror of the recipes the signed-in user
// owns on the server.
//
// The server is the source of truth. The mirror is populated by a
// generation-gated load and updated only after the server confirms a create,
// edit, or delete. Recipe ids are always server-assigned; the client never
// fabricates one.
package recipes

import (
	"errors"
	"strings"
)

// ErrFieldsRequired is the local validation failure for recipe forms. It is
// resolved entirely client-side and never reaches the network.
var ErrFieldsRequired = errors.New("all fields are required")

// Recipe is one entry of the mirror. ID is the server-assigned identifier.
type Recipe struct {
	ID          int64
	Title       string
	Ingredients string
	Steps       string
	ImageURL    string
}

// Fields carries the user-editable recipe fields.
type Fields struct {
	Title       string
	Ingredients string
	Steps       string
}

// Trim returns the fields with surrounding whitespace removed.
func (f Fields) Trim() Fields {
	return Fields{
		Title:       strings.TrimSpace(f.Title),
		Ingredients: strings.TrimSpace(f.Ingredients),
		Steps:       strings.TrimSpace(f.Steps),
	}
}

// Validate reports ErrFieldsRequired unless title, ingredients, and steps are
// all non-empty after trimming.
func (f Fields) Validate() error {
	t := f.Trim()
	if t.Title == "" || t.Ingredients == "" || t.Steps == "" {
		return ErrFieldsRequired
	}
	return nil
}

// LoadResult is the outcome of one full fetch. Missing counts recipes whose
// detail fetch failed; it keeps "degraded load" distinguishable from "owns
// zero recipes".
type LoadResult struct {
	Recipes []Recipe
	Missing int
}

// Mirror holds the ordered recipe list for one Own Recipes view instance.
// Mutated only from the UI's update loop.
type Mirror struct {
	gen     uint64
	entries []Recipe
	missing int
	loaded  bool
}

// NewMirror returns an empty, not-yet-loaded mirror.
func NewMirror() *Mirror {
	return &Mirror{}
}

// BeginLoad starts a reload and returns its generation. In-flight loads from
// earlier generations are implicitly invalidated.
func (m *Mirror) BeginLoad() uint64 {
	m.gen++
	return m.gen
}

// ApplyLoad installs a completed load. It reports false and changes nothing
// unless gen is the current generation.
func (m *Mirror) ApplyLoad(gen uint64, res LoadResult) bool {
	if gen != m.gen {
		return false
	}
	m.entries = append([]Recipe(nil), res.Recipes...)
	m.missing = res.Missing
	m.loaded = true
	return true
}

// ApplyCreate appends a server-confirmed recipe.
func (m *Mirror) ApplyCreate(r Recipe) {
	m.entries = append(m.entries, r)
}

// ApplyEdit replaces the fields of the entry with the given id in place,
// preserving its position. Unknown ids are ignored.
func (m *Mirror) ApplyEdit(id int64, f Fields) {
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries[i].Title = f.Title
			m.entries[i].Ingredients = f.Ingredients
			m.entries[i].Steps = f.Steps
			return
		}
	}
}

// ApplyDelete removes the entry with the given id, if present.
func (m *Mirror) ApplyDelete(id int64) {
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}

// Recipes returns the mirror's entries in order.
func (m *Mirror) Recipes() []Recipe {
	return m.entries
}

// Get returns the entry with the given id.
func (m *Mirror) Get(id int64) (Recipe, bool) {
	for _, r := range m.entries {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

// Len returns the number of mirrored recipes.
func (m *Mirror) Len() int {
	return len(m.entries)
}

// Missing returns how many recipe details failed to load in the last applied
// load.
func (m *Mirror) Missing() int {
	return m.missing
}

// Loaded reports whether at least one load has been applied.
func (m *Mirror) Loaded() bool {
	return m.loaded
}
