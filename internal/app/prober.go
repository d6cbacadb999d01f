package app

import (
	"context"
	"time"

	"lethimcook/internal/state"
)

const defaultProbeInterval = 5 * time.Second

// serverProber is the slice of the API client the prober needs.
type serverProber interface {
	ServerUp(ctx context.Context) (bool, error)
}

// StartProber launches a background goroutine that refreshes the liveness
// store at a fixed cadence. It returns immediately.
func StartProber(ctx context.Context, store *state.Store, client serverProber, interval time.Duration) {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			probe(ctx, store, client)
		}
	}()
}

func probe(ctx context.Context, store *state.Store, client serverProber) {
	up, err := client.ServerUp(ctx)
	// A non-200 answer still means the server is reachable.
	store.Update(up, err == nil)
}
