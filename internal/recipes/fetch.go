package recipes

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"lethimcook/internal/api"
)

// detailConcurrency bounds the parallel get_recipe fan-out.
const detailConcurrency = 8

// FetchAll loads the full recipe collection owned by username: the id list,
// then each recipe's detail. One recipe's failure does not block the others;
// failed details are omitted and counted in LoadResult.Missing. Server order
// of the id list is preserved.
func FetchAll(ctx context.Context, client api.RecipeAPI, username string) (LoadResult, error) {
	ids, err := client.ListRecipes(ctx, username)
	if err != nil {
		return LoadResult{}, err
	}

	fetched := make([]*Recipe, len(ids))
	var mu sync.Mutex
	missing := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			detail, err := client.GetRecipe(gctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				missing++
				return nil
			}
			fetched[i] = &Recipe{
				ID:          id,
				Title:       detail.Title,
				Ingredients: detail.Ingredients,
				Steps:       detail.Steps,
				ImageURL:    detail.ImageURL,
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]Recipe, 0, len(ids))
	for _, r := range fetched {
		if r != nil {
			out = append(out, *r)
		}
	}
	return LoadResult{Recipes: out, Missing: missing}, nil
}
