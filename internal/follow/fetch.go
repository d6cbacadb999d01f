package follow

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"lethimcook/internal/api"
)

// checkConcurrency bounds the parallel check_follow fan-out.
const checkConcurrency = 8

// Fetch resolves a search query against the server: ids via /search, each id
// to a username, then one check_follow per username other than self. A
// username that fails to resolve is skipped rather than aborting the batch.
// Only the initial search call can fail the whole fetch.
func Fetch(ctx context.Context, client api.SocialAPI, self, query string) (Result, error) {
	ids, err := client.SearchUsers(ctx, query)
	if err != nil {
		return Result{}, err
	}

	users := make([]string, 0, len(ids))
	for _, id := range ids {
		username, err := client.GetUser(ctx, id)
		if err != nil || username == "" {
			continue
		}
		if username == self {
			continue
		}
		users = append(users, username)
	}

	following := make(map[string]bool, len(users))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(checkConcurrency)
	for _, username := range users {
		g.Go(func() error {
			ok, err := client.CheckFollow(gctx, self, username)
			if err != nil {
				// Unreachable mid-batch: record as not followed rather
				// than dropping the row.
				ok = false
			}
			mu.Lock()
			following[username] = ok
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return Result{Users: users, Following: following}, nil
}
