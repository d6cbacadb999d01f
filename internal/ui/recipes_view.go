package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"lethimcook/internal/api"
	"lethimcook/internal/recipes"
)

type dialogKind int

const (
	dialogDetail dialogKind = iota
	dialogCreate
	dialogEdit
	dialogConfirmDelete
)

// recipeDialog is a modal over the recipe grid. Create and edit carry
// the form inputs; detail and delete carry only the target recipe id.
type recipeDialog struct {
	kind     dialogKind
	recipeID int64
	inputs   [3]textinput.Model
	focus    int
	busy     bool
	errMsg   string
}

type recipesModel struct {
	instance uuid.UUID
	owner    string
	mirror   *recipes.Mirror
	cursor   int
	loading  bool
	errMsg   string
	dialog   *recipeDialog
}

func newRecipesModel(owner string) *recipesModel {
	return &recipesModel{
		instance: uuid.New(),
		owner:    owner,
		mirror:   recipes.NewMirror(),
	}
}

func newRecipeForm(kind dialogKind, id int64, f recipes.Fields) *recipeDialog {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 128
	title.SetValue(f.Title)
	title.Focus()

	ingredients := textinput.New()
	ingredients.Placeholder = "ingredients"
	ingredients.CharLimit = 1024
	ingredients.SetValue(f.Ingredients)

	steps := textinput.New()
	steps.Placeholder = "steps"
	steps.CharLimit = 4096
	steps.SetValue(f.Steps)

	return &recipeDialog{
		kind:     kind,
		recipeID: id,
		inputs:   [3]textinput.Model{title, ingredients, steps},
	}
}

func (d *recipeDialog) setFocus(i int) {
	d.focus = i
	for j := range d.inputs {
		if j == i {
			d.inputs[j].Focus()
		} else {
			d.inputs[j].Blur()
		}
	}
}

func (d *recipeDialog) fields() recipes.Fields {
	return recipes.Fields{
		Title:       d.inputs[0].Value(),
		Ingredients: d.inputs[1].Value(),
		Steps:       d.inputs[2].Value(),
	}.Trim()
}

// loadRecipes advances the load generation and launches the full fetch.
func (m *Model) loadRecipes() tea.Cmd {
	rv := m.ownRecipes
	rv.loading = true
	rv.errMsg = ""
	gen := rv.mirror.BeginLoad()
	return loadRecipesCmd(m.ctx, m.client, rv.instance, gen, rv.owner)
}

func loadRecipesCmd(ctx context.Context, client *api.Client, instance uuid.UUID, gen uint64, owner string) tea.Cmd {
	return func() tea.Msg {
		res, err := recipes.FetchAll(ctx, client, owner)
		return recipesLoadedMsg{instance: instance, gen: gen, result: res, err: err}
	}
}

func (m Model) handleRecipesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rv := m.ownRecipes
	if rv == nil {
		return m, nil
	}
	if rv.dialog != nil {
		return m.handleRecipeDialogKey(msg)
	}

	switch msg.String() {
	case "j", "down":
		if rv.cursor < rv.mirror.Len()-1 {
			rv.cursor++
		}
	case "k", "up":
		if rv.cursor > 0 {
			rv.cursor--
		}
	case "a":
		rv.dialog = newRecipeForm(dialogCreate, 0, recipes.Fields{})
		return m, textinput.Blink
	case "r":
		return m, m.loadRecipes()
	case "enter":
		if r, ok := m.selectedRecipe(); ok {
			rv.dialog = &recipeDialog{kind: dialogDetail, recipeID: r.ID}
		}
	case "e":
		if r, ok := m.selectedRecipe(); ok {
			rv.dialog = newRecipeForm(dialogEdit, r.ID, recipes.Fields{
				Title:       r.Title,
				Ingredients: r.Ingredients,
				Steps:       r.Steps,
			})
			return m, textinput.Blink
		}
	case "d":
		if r, ok := m.selectedRecipe(); ok {
			rv.dialog = &recipeDialog{kind: dialogConfirmDelete, recipeID: r.ID}
		}
	}
	return m, nil
}

func (m Model) selectedRecipe() (recipes.Recipe, bool) {
	rv := m.ownRecipes
	list := rv.mirror.Recipes()
	if rv.cursor >= len(list) {
		return recipes.Recipe{}, false
	}
	return list[rv.cursor], true
}

func (m Model) handleRecipeDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rv := m.ownRecipes
	d := rv.dialog

	switch d.kind {
	case dialogDetail:
		switch msg.String() {
		case "e":
			if r, ok := rv.mirror.Get(d.recipeID); ok {
				rv.dialog = newRecipeForm(dialogEdit, r.ID, recipes.Fields{
					Title:       r.Title,
					Ingredients: r.Ingredients,
					Steps:       r.Steps,
				})
				return m, textinput.Blink
			}
		case "d":
			rv.dialog = &recipeDialog{kind: dialogConfirmDelete, recipeID: d.recipeID}
		case "esc":
			rv.dialog = nil
		}
		return m, nil

	case dialogConfirmDelete:
		switch msg.String() {
		case "y", "enter":
			if d.busy {
				return m, nil
			}
			d.busy = true
			return m, deleteRecipeCmd(m.ctx, m.client, rv.instance, d.recipeID, rv.owner)
		case "n", "esc":
			rv.dialog = nil
		}
		return m, nil
	}

	// Create and edit forms.
	switch msg.String() {
	case "esc":
		rv.dialog = nil
		return m, nil
	case "tab", "down":
		d.setFocus((d.focus + 1) % len(d.inputs))
		return m, nil
	case "shift+tab", "up":
		d.setFocus((d.focus + len(d.inputs) - 1) % len(d.inputs))
		return m, nil
	case "ctrl+s":
		return m, m.submitRecipeForm()
	}

	var cmd tea.Cmd
	d.inputs[d.focus], cmd = d.inputs[d.focus].Update(msg)
	return m, cmd
}

func (m Model) submitRecipeForm() tea.Cmd {
	rv := m.ownRecipes
	d := rv.dialog
	if d.busy {
		return nil
	}
	f := d.fields()
	if err := f.Validate(); err != nil {
		d.errMsg = msgFieldsRequired
		return nil
	}
	d.busy = true
	d.errMsg = ""
	if d.kind == dialogEdit {
		return editRecipeCmd(m.ctx, m.client, rv.instance, d.recipeID, f)
	}
	return createRecipeCmd(m.ctx, m.client, rv.instance, rv.owner, f)
}

func createRecipeCmd(ctx context.Context, client *api.Client, instance uuid.UUID, owner string, f recipes.Fields) tea.Cmd {
	return func() tea.Msg {
		err := client.AddRecipe(ctx, owner, f.Title, f.Ingredients, f.Steps)
		return recipeSavedMsg{instance: instance, fields: f, err: err}
	}
}

func editRecipeCmd(ctx context.Context, client *api.Client, instance uuid.UUID, id int64, f recipes.Fields) tea.Cmd {
	return func() tea.Msg {
		err := client.EditRecipe(ctx, id, f.Title, f.Ingredients, f.Steps)
		return recipeSavedMsg{instance: instance, recipeID: id, fields: f, err: err}
	}
}

func deleteRecipeCmd(ctx context.Context, client *api.Client, instance uuid.UUID, id int64, owner string) tea.Cmd {
	return func() tea.Msg {
		err := client.DeleteRecipe(ctx, id, owner)
		return recipeDeletedMsg{instance: instance, recipeID: id, err: err}
	}
}

func (m Model) applyRecipesLoaded(msg recipesLoadedMsg) (tea.Model, tea.Cmd) {
	rv := m.ownRecipes
	if rv == nil || rv.instance != msg.instance {
		return m, nil
	}
	if msg.err != nil {
		if rv.mirror.ApplyLoad(msg.gen, recipes.LoadResult{}) {
			rv.loading = false
			rv.errMsg = authErrorText(msg.err)
			rv.cursor = 0
		}
		return m, nil
	}
	if rv.mirror.ApplyLoad(msg.gen, msg.result) {
		rv.loading = false
		if rv.cursor >= rv.mirror.Len() {
			rv.cursor = 0
		}
	}
	return m, nil
}

func (m Model) applyRecipeSaved(msg recipeSavedMsg) (tea.Model, tea.Cmd) {
	rv := m.ownRecipes
	if rv == nil || rv.instance != msg.instance {
		return m, nil
	}
	d := rv.dialog
	if d != nil {
		d.busy = false
	}
	if msg.err != nil {
		if d != nil {
			d.errMsg = msg.err.Error()
		}
		return m, nil
	}
	rv.dialog = nil
	if msg.recipeID != 0 {
		rv.mirror.ApplyEdit(msg.recipeID, msg.fields)
		return m, nil
	}
	// The server assigns the new id, so refresh the whole list.
	return m, m.loadRecipes()
}

func (m Model) applyRecipeDeleted(msg recipeDeletedMsg) (tea.Model, tea.Cmd) {
	rv := m.ownRecipes
	if rv == nil || rv.instance != msg.instance {
		return m, nil
	}
	d := rv.dialog
	if d != nil {
		d.busy = false
	}
	if msg.err != nil {
		if d != nil {
			d.errMsg = authErrorText(msg.err)
		}
		return m, nil
	}
	rv.dialog = nil
	rv.mirror.ApplyDelete(msg.recipeID)
	if rv.cursor >= rv.mirror.Len() && rv.cursor > 0 {
		rv.cursor--
	}
	return m, nil
}

func (m Model) viewRecipes() string {
	rv := m.ownRecipes
	s := m.styles

	if rv.dialog != nil {
		return m.viewRecipeDialog()
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("My Recipes") + "\n\n")

	switch {
	case rv.loading:
		b.WriteString(s.Muted.Render("Loading recipes..."))
	case rv.errMsg != "":
		b.WriteString(s.Error.Render(rv.errMsg))
	case rv.mirror.Len() == 0:
		b.WriteString(s.Muted.Render("No recipes yet. Press a to add one."))
	default:
		for i, r := range rv.mirror.Recipes() {
			line := r.Title
			if i == rv.cursor {
				b.WriteString(s.Selected.Render(line))
			} else {
				b.WriteString(s.NavItem.Render(line))
			}
			b.WriteString("\n")
		}
		if rv.mirror.Missing() > 0 {
			b.WriteString("\n" + s.Warning.Render(
				fmt.Sprintf("%d recipe(s) could not be loaded.", rv.mirror.Missing())))
		}
	}
	return b.String()
}

func (m Model) viewRecipeDialog() string {
	rv := m.ownRecipes
	d := rv.dialog
	s := m.styles

	var b strings.Builder
	switch d.kind {
	case dialogDetail:
		r, ok := rv.mirror.Get(d.recipeID)
		if !ok {
			b.WriteString(s.Error.Render("Recipe no longer available."))
			break
		}
		b.WriteString(s.Subtitle.Render(r.Title) + "\n\n")
		b.WriteString(s.Label.Render("Ingredients") + "\n" + r.Ingredients + "\n\n")
		b.WriteString(s.Label.Render("Steps") + "\n" + r.Steps + "\n\n")
		b.WriteString(s.Muted.Render("e edit · d delete · esc close"))

	case dialogConfirmDelete:
		b.WriteString(s.Subtitle.Render("Delete this recipe?") + "\n\n")
		if d.errMsg != "" {
			b.WriteString(s.Error.Render(d.errMsg) + "\n\n")
		}
		b.WriteString(s.Muted.Render("y delete · n cancel"))

	default:
		header := "New Recipe"
		if d.kind == dialogEdit {
			header = "Edit Recipe"
		}
		b.WriteString(s.Subtitle.Render(header) + "\n\n")
		b.WriteString(s.Label.Render("Title") + "\n" + d.inputs[0].View() + "\n")
		b.WriteString(s.Label.Render("Ingredients") + "\n" + d.inputs[1].View() + "\n")
		b.WriteString(s.Label.Render("Steps") + "\n" + d.inputs[2].View() + "\n")
		if d.errMsg != "" {
			b.WriteString("\n" + s.Error.Render(d.errMsg) + "\n")
		}
		b.WriteString("\n" + s.Muted.Render("ctrl+s save · esc cancel"))
	}
	return s.Dialog.Render(b.String())
}

type recipesLoadedMsg struct {
	instance uuid.UUID
	gen      uint64
	result   recipes.LoadResult
	err      error
}

type recipeSavedMsg struct {
	instance uuid.UUID
	recipeID int64 // zero for a create
	fields   recipes.Fields
	err      error
}

type recipeDeletedMsg struct {
	instance uuid.UUID
	recipeID int64
	err      error
}
