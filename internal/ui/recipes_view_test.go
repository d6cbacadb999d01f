package ui

import (
	"testing"

	"lethimcook/internal/api"
	"lethimcook/internal/recipes"
)

func recipesModelFor(t *testing.T) Model {
	t.Helper()
	m := drive(t, guestModel(), key("3"))
	if m.ownRecipes == nil {
		t.Fatal("recipes sub-model not mounted")
	}
	if !m.ownRecipes.loading {
		t.Fatal("mounting must start a load")
	}
	return m
}

func loaded(t *testing.T, m Model, rs ...recipes.Recipe) Model {
	t.Helper()
	return drive(t, m, recipesLoadedMsg{
		instance: m.ownRecipes.instance,
		gen:      1,
		result:   recipes.LoadResult{Recipes: rs},
	})
}

func TestRecipes_LoadPopulatesGrid(t *testing.T) {
	m := recipesModelFor(t)
	m = loaded(t, m,
		recipes.Recipe{ID: 1, Title: "Pasta"},
		recipes.Recipe{ID: 2, Title: "Feijoada"},
	)
	if m.ownRecipes.loading {
		t.Fatal("still loading after result")
	}
	got := m.ownRecipes.mirror.Recipes()
	if len(got) != 2 || got[0].Title != "Pasta" || got[1].Title != "Feijoada" {
		t.Fatalf("recipes = %v", got)
	}
}

func TestRecipes_StaleLoadDropped(t *testing.T) {
	m := recipesModelFor(t)
	m = loaded(t, m, recipes.Recipe{ID: 1, Title: "Pasta"})

	// A second refresh is in flight; the first generation answering
	// again must not overwrite it.
	m = drive(t, m, key("r"))
	m = drive(t, m, recipesLoadedMsg{
		instance: m.ownRecipes.instance,
		gen:      1,
		result:   recipes.LoadResult{Recipes: []recipes.Recipe{{ID: 9, Title: "Stale"}}},
	})
	if got := m.ownRecipes.mirror.Recipes(); len(got) != 1 || got[0].Title != "Pasta" {
		t.Fatalf("recipes = %v, want the gen-1 snapshot kept", got)
	}
}

func TestRecipes_CreateRequiresAllFields(t *testing.T) {
	m := recipesModelFor(t)
	m = loaded(t, m)
	m = drive(t, m, key("a"), key("ctrl+s"))
	d := m.ownRecipes.dialog
	if d == nil {
		t.Fatal("dialog closed on invalid submit")
	}
	if d.errMsg != msgFieldsRequired {
		t.Fatalf("errMsg = %q, want %q", d.errMsg, msgFieldsRequired)
	}
}

func TestRecipes_CreateSuccessReloads(t *testing.T) {
	m := recipesModelFor(t)
	m = loaded(t, m)
	m = drive(t, m, key("a"))
	d := m.ownRecipes.dialog
	d.inputs[0].SetValue("Pasta")
	d.inputs[1].SetValue("flour, eggs")
	d.inputs[2].SetValue("mix and boil")

	m = drive(t, m, key("ctrl+s"))
	if !m.ownRecipes.dialog.busy {
		t.Fatal("submit did not mark the dialog busy")
	}

	m = drive(t, m, recipeSavedMsg{instance: m.ownRecipes.instance})
	if m.ownRecipes.dialog != nil {
		t.Fatal("dialog still open after successful create")
	}
	if !m.ownRecipes.loading {
		t.Fatal("successful create must refresh the list")
	}
}

func TestRecipes_CreateFailureKeepsDialog(t *testing.T) {
	m := recipesModelFor(t)
	m = loaded(t, m)
	m = drive(t, m, key("a"))
	d := m.ownRecipes.dialog
	d.inputs[0].SetValue("Pasta")
	d.inputs[1].SetValue("flour")
	d.inputs[2].SetValue("boil")
	m = drive(t, m, key("ctrl+s"))

	m = drive(t, m, recipeSavedMsg{
		instance: m.ownRecipes.instance,
		err:      &api.ConflictError{Message: "Invalid recipe."},
	})
	d = m.ownRecipes.dialog
	if d == nil {
		t.Fatal("dialog closed on failed create")
	}
	if d.errMsg != "Invalid recipe." {
		t.Fatalf("errMsg = %q, want server text", d.errMsg)
	}
}

func TestRecipes_EditAppliesInPlace(t *testing.T) {
	m := recipesModelFor(t)
	m = loaded(t, m,
		recipes.Recipe{ID: 1, Title: "Pasta"},
		recipes.Recipe{ID: 2, Title: "Feijoada"},
	)
	m = drive(t, m, key("e"))
	if m.ownRecipes.dialog == nil || m.ownRecipes.dialog.kind != dialogEdit {
		t.Fatal("edit dialog not opened")
	}

	m = drive(t, m, recipeSavedMsg{
		instance: m.ownRecipes.instance,
		recipeID: 1,
		fields:   recipes.Fields{Title: "Carbonara", Ingredients: "eggs", Steps: "toss"},
	})
	got := m.ownRecipes.mirror.Recipes()
	if got[0].Title != "Carbonara" || got[1].Title != "Feijoada" {
		t.Fatalf("recipes = %v, want edit applied in place", got)
	}
	if m.ownRecipes.dialog != nil {
		t.Fatal("dialog still open after successful edit")
	}
}

func TestRecipes_DeleteConfirmRemovesRow(t *testing.T) {
	m := recipesModelFor(t)
	m = loaded(t, m,
		recipes.Recipe{ID: 1, Title: "Pasta"},
		recipes.Recipe{ID: 2, Title: "Feijoada"},
	)
	m = drive(t, m, key("j"), key("d"))
	if m.ownRecipes.dialog == nil || m.ownRecipes.dialog.kind != dialogConfirmDelete {
		t.Fatal("confirm dialog not opened")
	}

	m = drive(t, m, recipeDeletedMsg{instance: m.ownRecipes.instance, recipeID: 2})
	got := m.ownRecipes.mirror.Recipes()
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("recipes = %v, want only id 1 left", got)
	}
	if m.ownRecipes.cursor != 0 {
		t.Fatalf("cursor = %d, want clamped to 0", m.ownRecipes.cursor)
	}
}

func TestRecipes_DeleteCancelKeepsRow(t *testing.T) {
	m := recipesModelFor(t)
	m = loaded(t, m, recipes.Recipe{ID: 1, Title: "Pasta"})
	m = drive(t, m, key("d"), key("n"))
	if m.ownRecipes.dialog != nil {
		t.Fatal("dialog still open after cancel")
	}
	if m.ownRecipes.mirror.Len() != 1 {
		t.Fatal("cancel must not delete")
	}
}
